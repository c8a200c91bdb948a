package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/skillmatch/matchworker/internal/database"
	"github.com/skillmatch/matchworker/internal/logger"
	"github.com/skillmatch/matchworker/internal/match"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("LOG_DEBUG") == "true")
	if err != nil {
		log.Fatal("error building logger: ", err)
	}
	defer zlog.Sync()

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		zlog.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		zlog.Fatal("empty RABBITMQ_URL in environment")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		zlog.Fatal("error opening db", zap.Error(err))
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCCOUNT_ID")
	if r2AccountId == "" {
		zlog.Fatal("empty R2_ACCCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		zlog.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		zlog.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		zlog.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		zlog.Fatal("error creating aws config", zap.Error(err))
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		zlog.Fatal("error connecting to RabbitMQ", zap.Error(err))
	}

	numWorkers := 3
	if v := os.Getenv("WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			zlog.Fatal("invalid WORKERS in environment", zap.String("value", v))
		}
		numWorkers = n
	}

	workerConfig := WorkerConfig{
		DB:          dbqueries,
		Matcher:     match.New(match.Config{}),
		R2:          &r2Config,
		AwsConfig:   &awsConfig,
		RabbitConn:  conn,
		RabbitMQUrl: rabbitmqUrl,
		Logger:      zlog,
	}

	zlog.Info("starting consumer pool", zap.Int("workers", numWorkers))
	workerConfig.StartConsumerWorkerPool(numWorkers)
}
