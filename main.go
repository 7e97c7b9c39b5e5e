package main

import (
	"dragchess/ui"
	"fmt"
)

func main() {
	if err := ui.RunDragChess(); err != nil {
		fmt.Println(err)
	}
}
