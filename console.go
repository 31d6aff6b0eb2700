package main // import "github.com/tonobo/fingersnake-go"

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// IsQuit checks if the key is a quit command
func IsQuit(char rune, key keyboard.Key) bool {
	return char == 'q' || char == 'Q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC
}

// IsRestart checks if the key is a restart command
func IsRestart(char rune) bool {
	return char == 'r' || char == 'R'
}

// StartConsole reads operator keys from the terminal: r restarts the arena
// and q, Esc or Ctrl-C calls quit.
func StartConsole(a *Arena, quit func()) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	fmt.Println("Console: r = restart, q = quit")

	go func() {
		defer keyboard.Close()
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			switch {
			case IsQuit(char, key):
				quit()
				return
			case IsRestart(char):
				a.Restart()
			}
		}
	}()
	return nil
}
