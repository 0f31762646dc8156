package gateway

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioGateway sends SMS through the Twilio REST API from a fixed sender number.
type TwilioGateway struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioGateway(cfg config.SMSConfig) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioGateway{client: client, from: cfg.FromNumber}
}

// SendSMS returns the provider message sid.
func (g *TwilioGateway) SendSMS(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(g.from)
	params.SetBody(body)

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		return "", errs.Wrap(err, "twilio create message")
	}
	if resp != nil && resp.Sid != nil {
		return *resp.Sid, nil
	}
	return "", nil
}
