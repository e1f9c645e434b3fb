// Copyright © 2026 Sara Regibo

package main

import "github.com/SaraRegibo/summavi/cmd"

func main() {
	cmd.Execute()
}
