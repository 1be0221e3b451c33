package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

type Application struct {
	APIURL   string   `koanf:"apiurl"`
	Address  string   `koanf:"address"`
	Database Database `koanf:"db"`
	Log      Log      `koanf:"log"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Log struct {
	Format string `koanf:"format"`
}

// Load reads the configuration from defaults, an optional YAML file
// and the environment, in that order of precedence.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		APIURL:  "http://localhost:8080",
		Address: ":8080",
		Database: Database{
			Path: "data/wishweek.db",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Error().Err(err).Msg("config: loading defaults")
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("config: no file found, using defaults and environment variables")
		} else {
			log.Error().Err(err).Msg("config: loading YAML")
			return Application{}, err
		}
	} else {
		log.Info().Str("path", path).Msg("config: loaded file")
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "WISHWEEK_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "WISHWEEK_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Error().Err(err).Msg("config: loading environment")
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
