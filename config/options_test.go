package config

import (
	"errors"
	"log"
	"path/filepath"
	"testing"

	"github.com/rstms/hexpad/codec"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	viper.Reset()
	viper.SetConfigFile(filepath.Join("testdata", "config.yaml"))
	err := viper.ReadInConfig()
	require.Nil(t, err)
	Init()
}

func TestViperKey(t *testing.T) {
	require.Equal(t, "hexpad.bytes_per_line", ViperKey("bytes-per-line"))
	require.Equal(t, "hexpad.encoding", ViperKey("encoding"))
}

func TestLoadConfigFile(t *testing.T) {
	initTestConfig(t)
	options, err := Load()
	require.Nil(t, err)
	require.Equal(t, 80, options.LineLength)
	require.Equal(t, 8, options.BytesPerLine)
	require.Equal(t, codec.CP037, options.Encoding)
	require.Nil(t, options.Warning)
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	Init()
	options, err := Load()
	require.Nil(t, err)
	require.Equal(t, DefaultLineLength, options.LineLength)
	require.Equal(t, DefaultBytesPerLine, options.BytesPerLine)
	require.Equal(t, codec.UTF8, options.Encoding)
}

func TestLoadInvalid(t *testing.T) {
	initTestConfig(t)
	ViperSet("line_length", 39)
	_, err := Load()
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrLineLength))
	log.Println(err)

	ViperSet("line_length", 500)
	ViperSet("bytes_per_line", 12)
	_, err = Load()
	require.True(t, errors.Is(err, ErrBytesPerLine))
	log.Println(err)
}

func TestLoadUnsupportedEncoding(t *testing.T) {
	initTestConfig(t)
	ViperSet("encoding", "klingon")
	options, err := Load()
	require.Nil(t, err)
	require.Equal(t, codec.UTF8, options.Encoding)
	require.True(t, errors.Is(options.Warning, codec.ErrUnsupportedEncoding))
	log.Println(options.Warning)
}
