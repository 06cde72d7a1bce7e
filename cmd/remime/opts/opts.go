package opts

import (
	"github.com/walteh/remime/pkg/config"
	"github.com/walteh/remime/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *status.UserLogger
}
