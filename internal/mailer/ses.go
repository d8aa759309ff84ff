package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client this package uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers mail through Amazon SES.
type SESSender struct {
	Client SESAPI
}

// NewSESSender builds an SES-backed sender using the default AWS credential
// chain.
func NewSESSender(ctx context.Context, region string) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SESSender{Client: ses.NewFromConfig(cfg)}, nil
}

// Send submits one message via the SES SendEmail API.
func (s *SESSender) Send(ctx context.Context, msg Message) error {
	_, err := s.Client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML)},
			},
		},
		Source: aws.String(msg.From),
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
