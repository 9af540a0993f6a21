package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/ggowtam/nutrition-tracker/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// PushService registers device tokens as SNS platform endpoints and
// delivers reminder pushes to every enabled device of a user.
type PushService struct {
	db              *gorm.DB
	sns             *awssns.Client
	fcmPlatformArn  string
	apnsPlatformArn string
}

func NewPushService(db *gorm.DB) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
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
	Platform string `json:"platform" binding:"required,oneof=android ios"`
	Token    string `json:"token" binding:"required"`
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch platform {
	case "android":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not configured")
		}
		return p.fcmPlatformArn, nil
	case "ios":
		if p.apnsPlatformArn == "" {
			return "", errors.New("SNS_APNS_ARN not configured")
		}
		return p.apnsPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

// RegisterDevice upserts by (user, token hash) so a re-registered token
// does not accumulate duplicate endpoints.
func (p *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	arn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(arn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	dev := models.UserDevice{
		UserID:      userID,
		Platform:    platform,
		TokenHash:   tokenHash(token),
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
	}
	err = p.db.
		Where("user_id = ? AND token_hash = ?", userID, dev.TokenHash).
		Assign(dev).
		FirstOrCreate(&dev).Error
	if err != nil {
		return nil, err
	}
	return &dev, nil
}

// PushToUser is best-effort: a failed endpoint is logged and skipped.
func (p *PushService) PushToUser(userID uint, title, body string, data map[string]string) {
	var devices []models.UserDevice
	if err := p.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error; err != nil {
		log.Printf("push: list devices failed: %v", err)
		return
	}

	payload, _ := json.Marshal(map[string]any{
		"title": title,
		"body":  body,
		"data":  data,
	})

	for _, d := range devices {
		_, err := p.sns.Publish(context.TODO(), &awssns.PublishInput{
			TargetArn: aws.String(d.EndpointARN),
			Message:   aws.String(string(payload)),
		})
		if err != nil {
			log.Printf("push: publish to device %d failed: %v", d.ID, err)
		}
	}
}
