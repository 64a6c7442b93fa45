package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spend-server/internal/handlers/v1/status"
	"github.com/carson-networks/spend-server/internal/handlers/v1/summary"
	"github.com/carson-networks/spend-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("spend-server", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	summary.NewSpendingSummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewCategorySummaryHandler(r.Service.Summary).Register(humaAPI)
	summary.NewDailySpendingHandler(r.Service.Summary).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// requestLogging attaches a LogData to every huma request and emits one line
// per completed operation with the accumulated data and timings.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	logData.AddData("method", ctx.Method())
	logData.AddData("path", ctx.URL().Path)

	stopTimer := logData.AddTiming("duration")
	next(huma.WithContext(ctx, logging.NewContext(ctx.Context(), logData)))
	stopTimer()

	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}
