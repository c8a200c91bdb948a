package main

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/skillmatch/matchworker/internal/database"
	"github.com/skillmatch/matchworker/internal/match"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	Matcher     *match.Matcher
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RabbitMQUrl string
	Logger      *zap.Logger
}

// Upload is the message the web application publishes after staging the
// raw file in object storage. ExtraSkills is the optional free-text
// skill string the applicant typed alongside the upload.
type Upload struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"object_key"`
	ExtraSkills string    `json:"extra_skills,omitempty"`
}

// Decision is an applicant-submission or reviewer-decision message for
// an existing score.
type Decision struct {
	ScoreID uuid.UUID `json:"score_id"`
	Action  string    `json:"action"`
}

// Decision actions.
const (
	ActionSubmit          = "submit"
	ActionToggleShortlist = "toggle_shortlist"
)
