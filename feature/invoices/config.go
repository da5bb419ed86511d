package invoices

// Config holds configuration for the invoice mailbox.
type Config struct {
	// Host is the IMAP server host.
	Host string `mapstructure:"imap_host" default:""`
	// Port is the IMAP server port.
	Port int `mapstructure:"imap_port" default:"993"`
	// User is the mailbox login.
	User string `mapstructure:"user" default:""`
	// Password is the mailbox password.
	Password string `mapstructure:"password" default:""`
	// InsecureSkipVerify disables TLS certificate verification. Some shared
	// mail hosts present certificates that don't match the IMAP hostname.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
}
