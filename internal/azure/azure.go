package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/sirupsen/logrus"
)

// Session holds the ambient credential and the selected subscription. The
// credential chain covers environment, managed identity and CLI logins.
type Session struct {
	credential     azcore.TokenCredential
	subscriptionID string
	logger         *logrus.Logger
}

func NewSession(subscriptionID string, logger *logrus.Logger) (*Session, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire azure credential: %w", err)
	}

	return &Session{
		credential:     credential,
		subscriptionID: subscriptionID,
		logger:         logger,
	}, nil
}

func (s *Session) Credential() azcore.TokenCredential {
	return s.credential
}

func (s *Session) SubscriptionID() string {
	return s.subscriptionID
}

// SelectSubscription verifies the configured subscription is visible to the
// credential before anything is written under it.
func (s *Session) SelectSubscription(ctx context.Context) error {
	client, err := armsubscriptions.NewClient(s.credential, nil)
	if err != nil {
		return fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	resp, err := client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return fmt.Errorf("failed to get subscription %s: %w", s.subscriptionID, err)
	}

	fields := logrus.Fields{"subscription": s.subscriptionID}
	if resp.DisplayName != nil {
		fields["name"] = *resp.DisplayName
	}
	if resp.State != nil {
		fields["state"] = string(*resp.State)
	}
	s.logger.WithFields(fields).Info("selected subscription")

	return nil
}
