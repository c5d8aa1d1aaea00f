// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rnr-dev/rnr/src/config"
	"github.com/rnr-dev/rnr/src/config/lang"
	"github.com/rnr-dev/rnr/src/message"
	"github.com/spf13/viper"
)

const (
	// Root config keys
	V_LOG_LEVEL     = "options.log_level"
	V_NO_LOG_FILE   = "options.no_log_file"
	V_TMP_DIR       = "options.tmp_dir"
	V_WINDOWS_SHELL = "options.windows_shell"
)

var (
	// Viper instance used by the cmd package
	v *viper.Viper

	// holds any error from reading in Viper config
	vConfigError error
)

func initViper() {
	// Already initialized by some other command
	if v != nil {
		return
	}

	v = viper.New()

	// Specify an alternate config file
	cfgFile := os.Getenv("RNR_CONFIG")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search config paths (order matters!)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rnr")
		v.SetConfigName("rnr-config")
	}

	// we replace 'OPTIONS.' because in a rnr-config.yaml, the key is options.<opt>, but in the environment, it's RNR_<OPT>
	// e.g. RNR_LOG_LEVEL=debug
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("OPTIONS.", ""))
	v.AutomaticEnv()

	vConfigError = v.ReadInConfig()
}

func printViperConfigUsed() {
	// Optional, so ignore file not found errors
	if vConfigError != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(vConfigError, &notFound) {
			message.WarnErr(vConfigError, fmt.Sprintf(lang.CmdViperErrLoadingConfigFile, vConfigError.Error()))
		}
		return
	}
	message.SLog.Debug(fmt.Sprintf(lang.CmdViperInfoUsingConfigFile, v.ConfigFileUsed()))
}
