package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server"
	"github.com/dmitrijs2005/imagevault/internal/server/config"
	"github.com/dmitrijs2005/imagevault/internal/server/lambdaapi"
)

// Configuration comes from IMAGEVAULT_* environment variables. Store clients
// are built once per cold start and reused across invocations.
func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	lambda.Start(lambdaapi.New(app.Handler(), logger).Handle)
}
