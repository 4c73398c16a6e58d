package utils

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var rekClient *rekognition.Client

const moderationMinConfidence = 80

func rekClientOrInit() (*rekognition.Client, error) {
	if rekClient != nil {
		return rekClient, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		return nil, err
	}
	rekClient = rekognition.NewFromConfig(cfg)
	return rekClient, nil
}

// ModerateImage screens citizen-submitted photos with Rekognition and
// returns the moderation labels found above the confidence cutoff. An empty
// slice means the image is acceptable. Disabled unless MODERATION_ENABLED
// is set, so local setups don't need AWS credentials.
func ModerateImage(data []byte) ([]string, error) {
	if os.Getenv("MODERATION_ENABLED") == "" {
		return nil, nil
	}

	client, err := rekClientOrInit()
	if err != nil {
		return nil, err
	}

	out, err := client.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(moderationMinConfidence),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.ModerationLabels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	return labels, nil
}
