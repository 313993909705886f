package config

import (
	"os"
	"testing"

	"github.com/nextairing/nextairing/filesystem"
	"github.com/nextairing/nextairing/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.AiringHost), ShouldEqual, "nextairing.com")
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 60)
		})

		Convey("Should let the environment override a default", func() {
			So(os.Setenv("NEXTAIRING_AIRING_HOST", "mirror.example"), ShouldBeNil)
			defer os.Unsetenv("NEXTAIRING_AIRING_HOST")

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.AiringHost), ShouldEqual, "mirror.example")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.user_agent"), ShouldEqual, "network_user_agent")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.NetworkTimeout]

		Convey("Env carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "NEXTAIRING_NETWORK_TIMEOUT")
		})

		Convey("Pretty mentions the key and the env variable", func() {
			So(Setup(), ShouldBeNil)
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.NetworkTimeout)
			So(pretty, ShouldContainSubstring, "NEXTAIRING_NETWORK_TIMEOUT")
		})

		Convey("MarshalJSON reports the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}
