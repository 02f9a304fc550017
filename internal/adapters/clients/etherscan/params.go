package etherscan

import (
	"net/url"
	"strconv"
)

// Upstream module (operation family) names.
const (
	moduleAccount     = "account"
	moduleContract    = "contract"
	moduleStats       = "stats"
	moduleToken       = "token"
	moduleTransaction = "transaction"
	moduleLogs        = "logs"
	moduleProxy       = "proxy"
)

// Routing parameter keys. The upstream selects server-side behavior via
// the module/action pair and authenticates via apikey; all three travel in
// the query string even on POST.
const (
	paramModule = "module"
	paramAction = "action"
	paramAPIKey = "apikey"
)

// Params is the outbound parameter set of one operation: the routing pair
// plus the operation arguments. Arguments set to an empty value are
// omitted from the request entirely so the upstream's own defaulting
// applies.
type Params struct {
	module string
	action string
	args   url.Values
}

// NewParams creates a parameter set for the given routing pair.
func NewParams(module, action string) *Params {
	return &Params{
		module: module,
		action: action,
		args:   url.Values{},
	}
}

// Set adds a required argument.
func (p *Params) Set(key, value string) *Params {
	p.args.Set(key, value)

	return p
}

// SetOptional adds an argument only when the value is non-empty.
func (p *Params) SetOptional(key, value string) *Params {
	if value != "" {
		p.args.Set(key, value)
	}

	return p
}

// SetOptionalInt adds an integer argument only when the value is positive.
func (p *Params) SetOptionalInt(key string, value int) *Params {
	if value > 0 {
		p.args.Set(key, strconv.Itoa(value))
	}

	return p
}

// IsProxy reports whether the operation belongs to the JSON-RPC proxy
// family, whose raw reply shape differs from the standard envelope. This
// is decided by the routing parameter, never by inspecting the body.
func (p *Params) IsProxy() bool {
	return p.module == moduleProxy
}

// Operation returns the "module.action" name for diagnostics.
func (p *Params) Operation() string {
	return p.module + "." + p.action
}

// routing returns the routing parameters plus credential, which always
// travel in the query string.
func (p *Params) routing(apiKey string) url.Values {
	v := url.Values{}
	v.Set(paramModule, p.module)
	v.Set(paramAction, p.action)
	v.Set(paramAPIKey, apiKey)

	return v
}

// query returns the full GET query: routing parameters merged with the
// operation arguments.
func (p *Params) query(apiKey string) url.Values {
	v := p.routing(apiKey)
	for key, values := range p.args {
		for _, value := range values {
			v.Add(key, value)
		}
	}

	return v
}

// body returns a copy of the operation arguments for a POST body.
func (p *Params) body() url.Values {
	v := url.Values{}
	for key, values := range p.args {
		for _, value := range values {
			v.Add(key, value)
		}
	}

	return v
}
