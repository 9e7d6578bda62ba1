package di

import (
	"context"

	"kbju-backend/application/ports"
	"kbju-backend/application/services"
	"kbju-backend/infrastructure/config"
	"kbju-backend/infrastructure/persistence/dynamodb"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	MealRepo ports.MealRepository
	Meals    *services.MealService
}

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := provideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	client := awsdynamodb.NewFromConfig(awsCfg)
	mealRepo := dynamodb.NewMealRepository(client, cfg.DynamoDBTable, logger)
	meals := services.NewMealService(mealRepo, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		MealRepo: mealRepo,
		Meals:    meals,
	}, nil
}

// provideLogger creates a new logger instance
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}
