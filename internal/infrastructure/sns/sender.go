package sns

import (
	"context"
	"log/slog"

	"github.com/amanpandey8120/vlocker-app/internal/config"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSSender sends SMS messages via AWS SNS. OTP codes travel only through
// this channel, never in an API response.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type sender struct {
	client *sns.Client
}

func NewSender(cfg *config.Config) (SMSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &sender{client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *sender) SendSMS(ctx context.Context, to, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &to,
		Message:     &message,
	})
	return err
}

type logSender struct{}

// NewLogSender returns a sender that only logs deliveries. Used in local
// development where no SNS credentials are configured.
func NewLogSender() SMSSender { return logSender{} }

func (logSender) SendSMS(_ context.Context, to, _ string) error {
	slog.Info("sms delivery skipped (no SNS configured)", "to", to)
	return nil
}
