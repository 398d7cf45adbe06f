package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jserrano27/handsOnServerlessApplicationswithGo_Code/practice/MovieCrew/internal/config"
	"github.com/jserrano27/handsOnServerlessApplicationswithGo_Code/practice/MovieCrew/internal/crew"
	"github.com/jserrano27/handsOnServerlessApplicationswithGo_Code/practice/MovieCrew/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("get-crew-by-role", "info")
		log.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.New("get-crew-by-role", cfg.LogLevel)

	awsCfg := aws.Config{}
	if cfg.Region != "" {
		awsCfg.Region = aws.String(cfg.Region)
	}
	if cfg.DynamoDBEndpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.DynamoDBEndpoint)
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	}))

	store := crew.NewDynamoStore(dynamodb.New(sess), cfg.TableName, cfg.CrewIndexName)

	opts := []crew.Option{crew.WithLogger(log)}
	if cfg.HideErrorDetail {
		opts = append(opts, crew.WithOpaqueErrors())
	}

	handler := crew.NewHandler(store, opts...)
	lambda.Start(handler.Handle)
}
