package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/franciscofornicola/rede-alerta/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// PushService registers mobile devices as SNS platform endpoints and
// delivers status-change notifications to them.
type PushService struct {
	db              *gorm.DB
	sns             *awssns.Client
	fcmPlatformArn  string
	apnsPlatformArn string
}

func NewPushService(db *gorm.DB) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "sa-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		db:              db,
		sns:             awssns.NewFromConfig(cfg),
		fcmPlatformArn:  os.Getenv("SNS_FCM_ARN"),
		apnsPlatformArn: os.Getenv("SNS_APNS_ARN"),
	}, nil
}

type RegisterDeviceReq struct {
	Platform string `json:"platform"` // "android" | "ios"
	Token    string `json:"token"`
}

func (p *PushService) tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	case "ios":
		if p.apnsPlatformArn == "" {
			return "", errors.New("SNS_APNS_ARN not set")
		}
		return p.apnsPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

// RegisterDevice idempotently creates the SNS endpoint for a device token
// and stores it against the user.
func (p *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	arn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	hash := p.tokenHash(token)
	var dev models.UserDevice
	err = p.db.Where("user_id = ? AND token_hash = ?", userID, hash).First(&dev).Error
	if err == nil {
		return &dev, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(arn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	dev = models.UserDevice{
		UserID:      userID,
		Platform:    strings.ToLower(platform),
		TokenHash:   hash,
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := p.db.Create(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

// PushToUser sends a notification to every enabled device of the user.
// Delivery is best-effort; failed endpoints are disabled.
func (p *PushService) PushToUser(userID uint, title, body string, data map[string]string) {
	var devices []models.UserDevice
	if err := p.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error; err != nil {
		return
	}

	payload := map[string]any{"title": title, "body": body, "data": data}
	msg, _ := json.Marshal(payload)

	for _, dev := range devices {
		_, err := p.sns.Publish(context.TODO(), &awssns.PublishInput{
			TargetArn: aws.String(dev.EndpointARN),
			Message:   aws.String(string(msg)),
		})
		if err != nil {
			p.db.Model(&dev).Update("enabled", false)
		}
	}
}
