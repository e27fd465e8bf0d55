package det

import (
	"os"

	"github.com/datazip-inc/det/logger"
	"github.com/datazip-inc/det/protocol"
)

// Run executes the det command line and exits the process
func Run() {
	err := protocol.CreateRootCommand().Execute()
	if err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}
