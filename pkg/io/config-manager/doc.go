// Package configmanager defines the loading contract shared by config managers.
package configmanager
