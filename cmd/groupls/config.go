package main

import (
	"io"

	"github.com/Cloud-Foundations/Dominator/lib/decoders"
	"github.com/philip-peterson/groupls/pkg/accounts/loader"

	"gopkg.in/yaml.v2"
)

func init() {
	decoders.RegisterDecoder(".yml", yamlDecoderGenerator)
}

// loadConfig reads the optional configuration file and applies the
// -groupFile and -passwdFile overrides.
func loadConfig() (loader.Config, error) {
	var config loader.Config
	if *configFile != "" {
		if err := decoders.DecodeFile(*configFile, &config); err != nil {
			return loader.Config{}, err
		}
	}
	if *groupFile != "" {
		config.GroupFile = *groupFile
	}
	if *passwdFile != "" {
		config.PasswdFile = *passwdFile
	}
	return config, nil
}

func yamlDecoderGenerator(r io.Reader) decoders.Decoder {
	return yaml.NewDecoder(r)
}
