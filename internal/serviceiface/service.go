// Package serviceiface defines the contract every managed service
// (logger, clasif, gateway) implements.
package serviceiface

type Service interface {
	Name() string
	Start() error
	Stop() error
}
