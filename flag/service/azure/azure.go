package azure

type Azure struct {
	ClientCacheDuration string
	ClientID            string
	ClientSecret        string
	EnvironmentName     string
	PartnerID           string
	SubscriptionID      string
	TenantID            string
}
