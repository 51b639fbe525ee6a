package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"storefront/utils"
)

// errorBody is the error envelope the backend uses for non-2xx responses.
// Message is free-form and shown to the user verbatim; Code is the structured
// error code newer backend versions attach.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// unmarshalJSONResponse decodes a 2xx response body into out, or converts a
// non-2xx response into a *utils.RequestError carrying the backend's message.
func unmarshalJSONResponse(resp *http.Response, out any) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("unexpected response shape (status %d): %w", resp.StatusCode, err)
		}
		return nil
	}

	reqErr := &utils.RequestError{Status: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		reqErr.Code = eb.Code
		reqErr.Message = eb.Message
		if reqErr.Message == "" {
			reqErr.Message = eb.Error
		}
	}
	if reqErr.Message == "" && len(body) > 0 {
		reqErr.Message = string(body)
	}
	return reqErr
}
