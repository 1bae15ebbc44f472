package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrRequestID = "request_id"
	AttrEnquiryID = "enquiry_id"
	AttrEventType = "event_type"
)

// EventTypeEnquiryCreated is published when a contact form enquiry is stored.
const EventTypeEnquiryCreated = "enquiry.created"

// AuthCookieName is the admin session cookie.
const AuthCookieName = "auth-token"

// RoleAdmin is the only role the admin area knows about.
const RoleAdmin = "admin"

// DefaultNotificationTopic is the FCM topic admin devices subscribe to.
const DefaultNotificationTopic = "admin-enquiries"
