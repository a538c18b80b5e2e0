// Package config resolves node connection settings for the CLI.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
)

const defaultCookieFileName = ".cookie"

var (
	ErrPartialUserPass   = errors.New("rpc user and rpc password must be set together")
	ErrAmbiguousAuth     = errors.New("set either rpc user/password or a cookie file, not both")
	ErrUnsupportedRPCURL = errors.New("unsupported rpc url")
)

// Credentials authenticate against the node. The set of implementations is closed.
type Credentials interface {
	apply(cfg *rpcclient.ConnConfig)
	String() string
}

// UserPass authenticates with an rpcuser/rpcpassword pair.
type UserPass struct {
	User     string
	Password string
}

func (c UserPass) apply(cfg *rpcclient.ConnConfig) {
	cfg.User = c.User
	cfg.Pass = c.Password
}

func (c UserPass) String() string {
	return fmt.Sprintf("user %q", c.User)
}

// Cookie authenticates with the cookie file bitcoind writes on startup.
type Cookie struct {
	Path string
}

func (c Cookie) apply(cfg *rpcclient.ConnConfig) {
	cfg.CookiePath = c.Path
}

func (c Cookie) String() string {
	return fmt.Sprintf("cookie %s", c.Path)
}

// DefaultCookiePath is where bitcoind keeps its cookie for network.
func DefaultCookiePath(network model.Network) string {
	return filepath.Join(btcutil.AppDataDir("bitcoin", false), network.DataDirName(), defaultCookieFileName)
}

// ResolveCredentials picks exactly one credential variant. Without any
// setting it falls back to the default cookie of network.
func ResolveCredentials(user, password, cookiePath string, network model.Network) (Credentials, error) {
	hasUserPass := user != "" || password != ""
	switch {
	case hasUserPass && (user == "" || password == ""):
		return nil, ErrPartialUserPass
	case hasUserPass && cookiePath != "":
		return nil, ErrAmbiguousAuth
	case hasUserPass:
		return UserPass{User: user, Password: password}, nil
	case cookiePath != "":
		return Cookie{Path: cookiePath}, nil
	default:
		return Cookie{Path: DefaultCookiePath(network)}, nil
	}
}
