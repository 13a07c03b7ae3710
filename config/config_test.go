package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"github.com/wversluys/fetcharr/config/mocks"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Metadata: Metadata{
				Scheme: "https",
				Host:   "api.imdbapi.dev",
			},
			Index: Index{
				Scheme: "https",
				Host:   "apibay.org",
			},
			Downloads: Downloads{
				Implementation: "qbittorrent",
				Host:           "localhost",
				Port:           8080,
				Username:       "admin",
				Password:       "hunter2",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("metadata.scheme", "https")
		cu.SetDefault("downloads.implementation", "qbittorrent")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Metadata: Metadata{
				Scheme: "https",
			},
			Downloads: Downloads{
				Implementation: "qbittorrent",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}
