//go:build !linux

package backend

import (
	"errors"
	"time"
)

// Cdev is only available on Linux.
type Cdev struct{}

func NewCdev(name string) *Cdev {
	return &Cdev{}
}

func (c *Cdev) Init() error {
	return errors.New("gpio character device requires Linux")
}

func (c *Cdev) Term() {}

func (c *Cdev) SetInput(gpio int) error {
	return errors.New("gpio character device requires Linux")
}

func (c *Cdev) SetPull(gpio int, pull Pull) error {
	return errors.New("gpio character device requires Linux")
}

func (c *Cdev) SetGlitchFilter(gpio int, period time.Duration) error {
	return errors.New("gpio character device requires Linux")
}

func (c *Cdev) SetAlert(gpio int, fn AlertFunc) error {
	return errors.New("gpio character device requires Linux")
}
