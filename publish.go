package main

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// publishUploadUpdate fans an upload status change out to the
// presentation side over the upload_updates topic exchange.
func publishUploadUpdate(rabbitConn *amqp.Connection, uploadID string, update map[string]any) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("upload.%s", uploadID)

	return ch.Publish(
		"upload_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
