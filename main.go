// File: storefront/main.go
package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/api"
	"storefront/cart"
	"storefront/config"
	"storefront/orders"
	"storefront/registration"
	"storefront/session"
	"storefront/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Everything is constructed here and injected; no package-level state
	// beyond config and the logger.
	sess := session.New(config.AppConfig.SessionFile)
	httpclient := &http.Client{Timeout: config.RequestTimeout()}
	backend := api.NewClient(config.AppConfig.APIBaseURL, httpclient, sess)

	onChange := func() {
		// The presentation layer hooks in here to re-render.
	}
	flow := registration.NewFlow(backend, sess, onChange)
	cartCtrl := cart.NewController(backend, sess, onChange)
	orderCtrl := orders.NewController(backend, sess, cartCtrl)
	_ = orderCtrl

	logger.Info("storefront client ready",
		zap.String("api", config.AppConfig.APIBaseURL),
		zap.Bool("authenticated", sess.IsAuthenticated()),
	)
	if user := sess.CurrentUser(); user != nil {
		logger.Sugar().Infof("signed in as %s <%s>", user.Name, user.Email)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	flow.Close()
	logger.Info("storefront client shutting down")
	_ = logger.Sync()
}
