package cli

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envFiles are loaded in order before flags are read. Variables already set
// in the environment are not overwritten.
var envFiles = []string{".env", ".env.local"}

// newConfig returns a viper instance that resolves every flag from
// DECKJSON_<FLAG> environment variables, with dashes mapped to underscores
// (--no-cache reads DECKJSON_NO_CACHE).
func newConfig() *viper.Viper {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags binds the flags of cmd so explicit flags take precedence over
// environment variables, which take precedence over flag defaults.
func (c *CLI) bindFlags(cmd *cobra.Command) error {
	return c.config.BindPFlags(cmd.Flags())
}
