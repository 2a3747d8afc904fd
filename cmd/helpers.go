package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/config"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/db"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/logging"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/server"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

// loadConfig loads the dotenv file and the config, validates it and sets up
// logging.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `studio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logging.Init(level, cfg.LogPretty)
	return cfg, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return awsCfg, nil
}

// openStore opens the configured submission backend. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (submissions.Store, server.Check, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		awsCfg, err := loadAWSConfig(ctx, cfg.Store.Region)
		if err != nil {
			return nil, server.Check{}, nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Store.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Store.Endpoint)
			}
		})
		ds := submissions.NewDynamoStore(client, cfg.Store.DynamoTable)
		check := server.Check{Name: "dynamodb", Ping: func(ctx context.Context) error {
			_, err := ds.Get(ctx, "healthz")
			if errors.Is(err, submissions.ErrNotFound) {
				return nil
			}
			return err
		}}
		return ds, check, func() {}, nil

	default:
		path := filepath.Join(cfg.DataDir, "studio.db")
		database, err := db.Open(path)
		if err != nil {
			return nil, server.Check{}, nil, fmt.Errorf("opening database: %w", err)
		}
		check := server.Check{Name: "sqlite", Ping: database.PingContext}
		return submissions.NewSQLStore(database), check, func() { database.Close() }, nil
	}
}
