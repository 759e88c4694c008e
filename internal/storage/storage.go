package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/sirupsen/logrus"
)

type Client struct {
	containers     *armstorage.BlobContainersClient
	subscriptionID string
	resourceGroup  string
	account        string
	logger         *logrus.Logger
}

func New(subscriptionID, resourceGroup, account string, credential azcore.TokenCredential, options *arm.ClientOptions, logger *logrus.Logger) (*Client, error) {
	containers, err := armstorage.NewBlobContainersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob containers client: %w", err)
	}

	return &Client{
		containers:     containers,
		subscriptionID: subscriptionID,
		resourceGroup:  resourceGroup,
		account:        account,
		logger:         logger,
	}, nil
}

// AccountResourceID returns the ARM resource ID of the storage account the
// export delivers to. Composed locally, no lookup.
func (c *Client) AccountResourceID() string {
	return AccountResourceID(c.subscriptionID, c.resourceGroup, c.account)
}

func AccountResourceID(subscriptionID, resourceGroup, account string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Storage/storageAccounts/%s",
		subscriptionID, resourceGroup, account)
}

// EnsureContainer checks for the blob container and creates it when absent.
// An already existing container is not an error.
func (c *Client) EnsureContainer(ctx context.Context, name string) error {
	_, err := c.containers.Get(ctx, c.resourceGroup, c.account, name, nil)
	if err == nil {
		c.logger.WithField("container", name).Info("container already exists")
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to check container %s: %w", name, err)
	}

	_, err = c.containers.Create(ctx, c.resourceGroup, c.account, name, armstorage.BlobContainer{}, nil)
	if err != nil {
		// another writer may have created it between the check and the create
		if hasErrorCode(err, "ContainerAlreadyExists") {
			c.logger.WithField("container", name).Info("container already exists")
			return nil
		}
		return fmt.Errorf("failed to create container %s: %w", name, err)
	}

	c.logger.WithField("container", name).Info("created container")
	return nil
}

func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

func hasErrorCode(err error, code string) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.ErrorCode == code
}
