package dependencyinjection

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/stellar/go-stellar-sdk/support/log"
)

// dependenciesStore holds the shared service instances, keyed by instance name.
var dependenciesStore sync.Map

// SetInstance adds a new service instance to the store, replacing any instance with the same name.
func SetInstance(instanceName string, instance any) {
	dependenciesStore.Store(instanceName, instance)
}

// GetInstance retrieves a service instance by name from the store.
func GetInstance(instanceName string) (any, bool) {
	return dependenciesStore.Load(instanceName)
}

// DeleteAndCloseInstanceByKey removes a service instance from the store and closes it when it
// implements io.Closer.
func DeleteAndCloseInstanceByKey(ctx context.Context, instanceName string) {
	instance, ok := dependenciesStore.LoadAndDelete(instanceName)
	if !ok {
		return
	}

	if closeableInstance, ok := instance.(io.Closer); ok {
		if err := closeableInstance.Close(); err != nil {
			log.Ctx(ctx).Errorf("error closing instance %s: %v", instanceName, err)
		}
	}
}

// getTypedInstance returns the named instance when it exists. The boolean is false when there is
// no instance, and an error is returned when the stored instance has another type.
func getTypedInstance[T any](instanceName string) (T, bool, error) {
	var zero T
	instance, ok := GetInstance(instanceName)
	if !ok {
		return zero, false, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, true, errCastInstance(instanceName)
	}
	return typed, true, nil
}

func errCastInstance(instanceName string) error {
	return fmt.Errorf("error trying to cast %s", instanceName)
}
