// Package client holds the small shared bits of the admin CLI's HTTP access.
package client

import (
	"net/url"
	"path"

	"github.com/certhub/certhub/config/configkey"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func New() *resty.Client {
	return resty.New()
}

// URL joins path elements onto the configured hub URL.
func URL(elem ...string) string {
	u, err := url.Parse(viper.GetString(configkey.HubURL))
	if err != nil {
		logrus.Error(err)
		return ""
	}

	parts := append([]string{u.Path}, elem...)
	u.Path = path.Join(parts...)
	logrus.Tracef("Using %s", u.String())
	return u.String()
}
