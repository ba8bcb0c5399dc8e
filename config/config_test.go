package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kylegrant/costar/config/mocks"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"
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
			Dataset: Dataset{
				Dir:     "/tmp/imdb-test-data",
				BaseURL: "https://datasets.example.test/",
				Timeout: time.Second * 30,
			},
			Actors: Actors{
				A: "Bill Murray",
				B: "Owen Wilson",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("dataset.dir", "imdb_data")
		cu.SetDefault("dataset.baseURL", "https://datasets.imdbws.com/")
		cu.SetDefault("actors.a", "X")
		cu.SetDefault("actors.b", "Y")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Dataset: Dataset{
				Dir:     "imdb_data",
				BaseURL: "https://datasets.imdbws.com/",
			},
			Actors: Actors{
				A: "X",
				B: "Y",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("missing actor fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("dataset.dir", "imdb_data")
		cu.SetDefault("dataset.baseURL", "https://datasets.imdbws.com/")
		cu.SetDefault("actors.a", "X")
		_, err := New(cu)
		if err == nil {
			t.Error("TestNew() expected validation error for missing actor name")
		}
	})

	t.Run("base url must be a url", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("dataset.dir", "imdb_data")
		cu.SetDefault("dataset.baseURL", "not a url")
		cu.SetDefault("actors.a", "X")
		cu.SetDefault("actors.b", "Y")
		_, err := New(cu)
		if err == nil {
			t.Error("TestNew() expected validation error for malformed base url")
		}
	})
}
