package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/tscodec/errs"
)

const (
	// URLPrefix is the scheme of a connection URL.
	URLPrefix = "iotdb://"
	// JDBCURLPrefix is the scheme used by JDBC-style client configuration,
	// accepted as an alias of URLPrefix.
	JDBCURLPrefix = "jdbc:" + URLPrefix
)

const (
	DefaultHost     = "localhost"
	DefaultPort     = 6667
	DefaultUser     = "user"
	DefaultPassword = "password"

	PropUser     = "user"
	PropPassword = "password"
)

var hostPortPattern = regexp.MustCompile(`([^;]*):([^;]*)/`)

// ConnectionParams holds the server address and credentials of a connection.
type ConnectionParams struct {
	URL      string
	Host     string
	Port     int
	Username string
	Password string
}

// DefaultConnectionParams returns the parameters used for a bare URLPrefix.
func DefaultConnectionParams(url string) ConnectionParams {
	return ConnectionParams{
		URL:      url,
		Host:     DefaultHost,
		Port:     DefaultPort,
		Username: DefaultUser,
		Password: DefaultPassword,
	}
}

// Addr returns host:port.
func (p ConnectionParams) Addr() string {
	return p.Host + ":" + strconv.Itoa(p.Port)
}

// ParseURL parses a connection URL of the form iotdb://host:port/ or
// jdbc:iotdb://host:port/.
//
// A URL consisting of the bare prefix (ignoring case and surrounding space)
// yields the defaults. The PropUser and PropPassword entries of props, when present,
// override the default credentials.
//
// Returns errs.ErrInvalidURL when the prefix is missing, no host:port/ part
// is found, or the port is not a number in 0-65535.
func ParseURL(url string, props map[string]string) (ConnectionParams, error) {
	params := DefaultConnectionParams(url)

	rest, ok := trimPrefixFold(strings.TrimSpace(url), JDBCURLPrefix)
	if !ok {
		rest, ok = trimPrefixFold(strings.TrimSpace(url), URLPrefix)
	}
	if !ok {
		return ConnectionParams{}, fmt.Errorf("%w: %q must start with %s or %s", errs.ErrInvalidURL, url, URLPrefix, JDBCURLPrefix)
	}

	if rest != "" {
		matches := hostPortPattern.FindAllStringSubmatch(rest, -1)
		if len(matches) == 0 {
			return ConnectionParams{}, fmt.Errorf("%w: %q, expected %shost:port/", errs.ErrInvalidURL, url, URLPrefix)
		}

		// the last host:port/ group wins
		last := matches[len(matches)-1]
		port, err := strconv.Atoi(last[2])
		if err != nil || port < 0 || port > 65535 {
			return ConnectionParams{}, fmt.Errorf("%w: invalid port %q", errs.ErrInvalidURL, last[2])
		}
		params.Host = last[1]
		params.Port = port
	}

	if user, ok := props[PropUser]; ok {
		params.Username = user
	}
	if password, ok := props[PropPassword]; ok {
		params.Password = password
	}

	return params, nil
}

func trimPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}

	return s[len(prefix):], true
}
