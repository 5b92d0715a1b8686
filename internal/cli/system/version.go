package system

import (
	"fmt"

	"github.com/julianstephens/nybbler/internal/constants"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("%s %s\n", constants.AppName, constants.Version)
	return nil
}
