package client

import (
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/giantswarm/microerror"
)

type AzureClientSetConfig struct {
	// ClientID is the ID of the Active Directory Service Principal.
	ClientID string
	// ClientSecret is the secret of the Active Directory Service Principal.
	ClientSecret string
	// EnvironmentName is the cloud environment identifier on Azure. Values can be
	// used as listed in the link below. Defaults to AzurePublicCloud.
	//
	//     https://github.com/Azure/go-autorest/blob/ec5f4903f77ed9927ac95b19ab8e44ada64c1356/autorest/azure/environments.go#L13
	//
	EnvironmentName string
	// SubscriptionID is the ID of the Azure subscription.
	SubscriptionID string
	// TenantID is the ID of the Active Directory tenant.
	TenantID string
	// PartnerID is the ID used for the Azure Partner Program.
	PartnerID string
}

func (c AzureClientSetConfig) Validate() error {
	if c.ClientID == "" {
		return microerror.Maskf(invalidConfigError, "%T.ClientID must not be empty", c)
	}
	if c.ClientSecret == "" {
		return microerror.Maskf(invalidConfigError, "%T.ClientSecret must not be empty", c)
	}
	if c.SubscriptionID == "" {
		return microerror.Maskf(invalidConfigError, "%T.SubscriptionID must not be empty", c)
	}
	if c.TenantID == "" {
		return microerror.Maskf(invalidConfigError, "%T.TenantID must not be empty", c)
	}

	_, err := c.environment()
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

// ClientCredentialsConfig returns the service principal credentials pointed
// at the configured cloud environment.
func (c AzureClientSetConfig) ClientCredentialsConfig() (auth.ClientCredentialsConfig, error) {
	env, err := c.environment()
	if err != nil {
		return auth.ClientCredentialsConfig{}, microerror.Mask(err)
	}

	credentials := auth.NewClientCredentialsConfig(c.ClientID, c.ClientSecret, c.TenantID)
	credentials.AADEndpoint = env.ActiveDirectoryEndpoint
	credentials.Resource = env.ResourceManagerEndpoint

	return credentials, nil
}

func (c AzureClientSetConfig) environment() (azure.Environment, error) {
	if c.EnvironmentName == "" {
		return azure.PublicCloud, nil
	}

	env, err := azure.EnvironmentFromName(c.EnvironmentName)
	if err != nil {
		return azure.Environment{}, microerror.Maskf(invalidConfigError, "%T.EnvironmentName %#q is unknown", c, c.EnvironmentName)
	}

	return env, nil
}
