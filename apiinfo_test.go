// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package alpaca

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApiInfo(t *testing.T) {
	// No t.Parallel(): the test manipulates the process environment.

	Convey("NewApiInfo works correctly", t, func() {
		Convey("with an explicit base URL", func() {
			info, err := NewApiInfo("key", "secret", "https://example.com/")
			So(err, ShouldBeNil)
			So(info, ShouldResemble, ApiInfo{
				KeyID:     "key",
				SecretKey: "secret",
				BaseURL:   "https://example.com",
			})
		})

		Convey("defaults to the paper trading URL", func() {
			info, err := NewApiInfo("key", "secret", "")
			So(err, ShouldBeNil)
			So(info.BaseURL, ShouldEqual, TradingURL)
		})

		Convey("requires both credentials", func() {
			_, err := NewApiInfo("", "secret", "")
			So(err, ShouldNotBeNil)
			_, err = NewApiInfo("key", "", "")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("NewApiInfoFromEnv works correctly", t, func() {
		restore := map[string]string{}
		for _, k := range []string{EnvKeyID, EnvSecretKey, EnvBaseURL} {
			restore[k] = os.Getenv(k)
		}
		defer func() {
			for k, v := range restore {
				os.Setenv(k, v)
			}
		}()

		So(os.Setenv(EnvKeyID, "envkey"), ShouldBeNil)
		So(os.Setenv(EnvSecretKey, "envsecret"), ShouldBeNil)
		So(os.Setenv(EnvBaseURL, ""), ShouldBeNil)

		info, err := NewApiInfoFromEnv()
		So(err, ShouldBeNil)
		So(info.KeyID, ShouldEqual, "envkey")
		So(info.SecretKey, ShouldEqual, "envsecret")
		So(info.BaseURL, ShouldEqual, TradingURL)

		So(os.Setenv(EnvSecretKey, ""), ShouldBeNil)
		_, err = NewApiInfoFromEnv()
		So(err, ShouldNotBeNil)
	})
}
