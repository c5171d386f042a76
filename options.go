package vault

// createConfig holds the optional parameters for Create.
type createConfig struct {
	privacyTemplate string
}

// CreateOption configures Create.
type CreateOption func(*createConfig)

// WithPrivacyTemplate replaces the built-in privacy notice template. The
// template may use the placeholders {name}, {emailAddress}, {legalName},
// {phoneNumber}, {guidanceDocument} and {address}, substituted from the
// vault's PersonalInfo.
func WithPrivacyTemplate(tmpl string) CreateOption {
	return func(c *createConfig) {
		c.privacyTemplate = tmpl
	}
}

// unlockConfig holds the optional parameters for Unlock.
type unlockConfig struct {
	savePath string
}

// UnlockOption configures Unlock.
type UnlockOption func(*unlockConfig)

// WithSavePath unpacks the vault under dir instead of the user's
// downloads directory.
func WithSavePath(dir string) UnlockOption {
	return func(c *unlockConfig) {
		c.savePath = dir
	}
}
