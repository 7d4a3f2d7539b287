package constants

// Redis key formats
const (
	// Auth
	KeyOTP = "otp:%s:%s" // Format: otp:{flow}:{subject}

	// Listing cache; every cached listing read lives under this prefix
	CacheFamilyListing = "services-listing:"
	KeyCacheGeneration = "cache:gen:%s" // Format: cache:gen:{family}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{ip}
)
