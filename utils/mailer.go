package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func sesClientOrInit() (*ses.Client, error) {
	if sesClient != nil {
		return sesClient, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" {
		// mailer not configured, skip silently
		return nil
	}

	client, err := sesClientOrInit()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(source),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendStatusUpdateEmail notifies the alert owner that the status changed.
func SendStatusUpdateEmail(to string, alertTitle string, status string) error {
	subject := "Rede Alerta: seu relato foi atualizado"
	body := fmt.Sprintf("O status do seu relato %q mudou para: %s", alertTitle, status)
	return sendEmail(to, subject, body)
}
