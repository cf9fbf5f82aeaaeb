package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/game"
)

// Line-command protocol spoken over the websocket:
//
//	g        fetch current state
//	o x y    reveal (open) a tile
//	f x y    toggle a flag
//	r        restart after the round has ended
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"r": 0,
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(c *game.Controller, command string) error {
	parts := strings.Split(command, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		c.HandleReveal(x, y)
		return nil
	case "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		c.HandleFlagToggle(x, y)
		return nil
	case "r":
		if c.Playing() {
			return errors.New("round still in progress")
		}
		return c.StartRound()
	}
	return nil
}
