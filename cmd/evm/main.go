// Copyright 2020 The go-probeum Authors
// This file is part of go-probeum.
//
// go-probeum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-probeum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-probeum. If not, see <http://www.gnu.org/licenses/>.

// Command evm is a standalone runner that loads a bytecode buffer and
// drives the interpreter over it, printing the resulting halt/fault.
// It is not a node: no p2p, consensus, or RPC bootstrap lives here.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/coreumchain/coreum/common"
	"github.com/coreumchain/coreum/core/vm"
)

var (
	codeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "hex-encoded bytecode to execute (0x-prefix optional)",
	}
	gasFlag = cli.Int64Flag{
		Name:  "gas",
		Usage: "gas budget for the run",
		Value: 10_000_000,
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "print every emitted log entry",
	}
)

var runCommand = cli.Command{
	Name:   "run",
	Usage:  "execute a bytecode buffer against the interpreter",
	Flags:  []cli.Flag{codeFlag, gasFlag, dumpFlag},
	Action: runBytecode,
}

func runBytecode(ctx *cli.Context) error {
	codeHex := strings.TrimPrefix(ctx.String("code"), "0x")
	code, err := hex.DecodeString(codeHex)
	if err != nil {
		return fmt.Errorf("invalid --code: %w", err)
	}

	in := vm.NewInterpreter(common.Address{}, code, ctx.Int64("gas"))
	result, err := in.Run()
	if err != nil {
		color.Red("fault: %v", err)
		return err
	}
	if result.Reverted {
		color.Yellow("reverted")
	} else {
		color.Green("halted")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "value"})
	table.Append([]string{"gas left", fmt.Sprintf("%d", result.GasLeft)})
	table.Append([]string{"return data", "0x" + hex.EncodeToString(result.ReturnData)})
	table.Append([]string{"logs emitted", fmt.Sprintf("%d", len(result.Logs))})
	table.Render()

	if ctx.Bool("dump") {
		for i, l := range result.Logs {
			fmt.Printf("log[%d]: address=%s topics=%d data=0x%x\n", i, l.Address.Hex(), len(l.Topics), l.Data)
		}
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "evm"
	app.Usage = "standalone bytecode runner for the execution core"
	app.Commands = []cli.Command{runCommand}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
