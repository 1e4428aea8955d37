package rss2maildir

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// FeedConfig describes a single feed. Immutable once loaded.
type FeedConfig struct {
	Name           string `mapstructure:"name"`
	URL            string `mapstructure:"url"`
	Maildir        string `mapstructure:"maildir"`
	DaysToRemember int    `mapstructure:"days_to_remember"`
	Links          bool   `mapstructure:"links"`
}

// SetDefaults installs process-wide configuration defaults. Call before
// reading the config file.
func SetDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("maildir", filepath.Join(home, ".mail", "rss"))
	viper.SetDefault("cache", filepath.Join(home, ".cache", "rss2maildir"))
	viper.SetDefault("single_maildir", false)
	viper.SetDefault("days_to_remember", 14)
	viper.SetDefault("parallelism", 4)
	viper.SetDefault("timeout", 10*time.Second)
	viper.SetDefault("lock", filepath.Join(os.TempDir(), "rss2maildir.lock"))
	viper.SetDefault("daemon.delay", 60)
	viper.SetDefault("mail.from.name", "rss2maildir")
	viper.SetDefault("mail.from.email", "rss2maildir@localhost")
	viper.SetDefault("mail.to.email", defaultRecipient())
}

func defaultRecipient() string {
	u, err := user.Current()
	if err != nil {
		return "rss@localhost"
	}

	return u.Username + "@localhost"
}

// LoadFeeds reads the declared feeds, validates them and fills in per-feed
// defaults: retention window and maildir path. Without a per-feed override a
// feed's maildir is "<base>.<name>", or the shared base maildir when
// single_maildir is on.
func LoadFeeds() ([]FeedConfig, error) {
	var feeds []FeedConfig

	if err := viper.UnmarshalKey("feeds", &feeds); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	if len(feeds) == 0 {
		return nil, &ConfigError{Reason: "no feeds declared"}
	}

	for i := range feeds {
		f := &feeds[i]

		if f.Name == "" {
			return nil, &ConfigError{Reason: "missing feed name"}
		}

		if f.URL == "" {
			return nil, &ConfigError{Reason: fmt.Sprintf("feed %q has no url", f.Name)}
		}

		if f.DaysToRemember == 0 {
			f.DaysToRemember = viper.GetInt("days_to_remember")
		}

		if f.Maildir == "" {
			base := viper.GetString("maildir")

			if viper.GetBool("single_maildir") {
				f.Maildir = base
			} else {
				f.Maildir = base + "." + f.Name
			}
		}
	}

	return feeds, nil
}
