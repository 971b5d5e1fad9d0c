// Package naming derives names of resources shared by all nodes of a group.
package naming

import (
	"fmt"

	"github.com/giantswarm/microerror"
)

const DefaultPrefix = "jclouds"

// Convention derives the name of resources shared by all nodes of a group,
// such as their network security group.
type Convention interface {
	SharedNameForGroup(group string) string
}

type PrefixConfig struct {
	Prefix string
}

// Prefix names shared resources "<prefix>-<group>".
type Prefix struct {
	prefix string
}

func NewPrefix(config PrefixConfig) (*Prefix, error) {
	if config.Prefix == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Prefix must not be empty", config)
	}

	p := &Prefix{
		prefix: config.Prefix,
	}

	return p, nil
}

func (p *Prefix) SharedNameForGroup(group string) string {
	return fmt.Sprintf("%s-%s", p.prefix, group)
}
