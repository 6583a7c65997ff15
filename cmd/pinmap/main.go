// Command pinmap prints the pin routing tables of the supported chips,
// resolved over a simulated register file. It answers the bring-up
// questions: what can this pad route, which pads reach a peripheral,
// and which fixed interrupt line belongs to a pad or peripheral.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vorago-periphs-go/family"
	"vorago-periphs-go/family/vor1x"
	"vorago-periphs-go/family/vor4x"
	"vorago-periphs-go/pin"
	"vorago-periphs-go/regsim"
)

var (
	chipFlag    = flag.String("chip", "vor1x", "chip to map: vor1x, vor4x or va41628")
	pinFlag     = flag.String("pin", "", "single pad, by name (PA3) or port:offset (0:3)")
	periphFlag  = flag.String("periph", "", "only routes serving this peripheral (uart1, spi0, tim3, ...)")
	catalogFlag = flag.Bool("catalog", false, "print the peripheral catalog instead of the pin table")
	jsonFlag    = flag.Bool("json", false, "emit JSON instead of text")
)

func main() {
	flag.Parse()

	chip, err := build(*chipFlag)
	if err != nil {
		fail(err)
	}

	if *jsonFlag {
		if err := printJSON(chip); err != nil {
			fail(err)
		}
		return
	}

	l := chip.Layout()
	fmt.Printf("%s: %d ports, %d pins\n", chip.Name(), l.Ports(), l.NumPins())

	switch {
	case *catalogFlag:
		printCatalog(chip)
	case *pinFlag != "":
		id, err := parsePin(l, *pinFlag)
		if err != nil {
			fail(err)
		}
		printPin(chip, id)
	default:
		printTable(chip)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "pinmap:", err)
	os.Exit(1)
}

func build(name string) (*family.Chip, error) {
	sim := regsim.New()
	switch name {
	case "vor1x":
		return vor1x.NewSim(sim), nil
	case "vor4x":
		return vor4x.NewSim(sim), nil
	case "va41628":
		return vor4x.NewVA41628Sim(sim), nil
	}
	return nil, fmt.Errorf("unknown chip %q (want vor1x, vor4x or va41628)", name)
}

func parsePin(l family.Layout, s string) (pin.ID, error) {
	if p, off, ok := strings.Cut(s, ":"); ok {
		pn, err1 := strconv.Atoi(p)
		on, err2 := strconv.Atoi(off)
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("bad pin %q (want PA3 or 0:3)", s)
		}
		return l.Lookup(pn, on)
	}
	id, err := pin.Parse(s)
	if err != nil {
		return 0, err
	}
	return l.Lookup(int(id.Port()), int(id.Offset()))
}

func printTable(c *family.Chip) {
	c.Layout().ForEach(func(id pin.ID) {
		rows := c.Caps().RowsFor(id)
		parts := make([]string, 0, len(rows))
		for _, e := range rows {
			if *periphFlag != "" && e.Periph != *periphFlag {
				continue
			}
			parts = append(parts, e.Sel.String()+" "+route(e))
		}
		if len(parts) == 0 {
			if *periphFlag != "" {
				return
			}
			parts = append(parts, "gpio only")
		}
		fmt.Printf("%-5s %s\n", id, strings.Join(parts, "  "))
	})
}

func printPin(c *family.Chip, id pin.ID) {
	fmt.Print(id)
	if line, ok := c.Layout().PinInterrupt(id); ok {
		fmt.Printf("  irq %d", line)
	}
	fmt.Println()
	fmt.Printf("  %s gpio\n", pin.Sel0)
	for _, e := range c.Caps().RowsFor(id) {
		fmt.Printf("  %s %s\n", e.Sel, route(e))
	}
}

func printCatalog(c *family.Chip) {
	fmt.Printf("%-10s %-6s %3s  %s\n", "periph", "bank", "bit", "irq")
	for _, d := range c.Catalog() {
		if *periphFlag != "" && d.Name != *periphFlag {
			continue
		}
		irq := "-"
		if d.IRQ != family.NoIRQ {
			irq = strconv.Itoa(d.IRQ)
		}
		fmt.Printf("%-10s %-6s %3d  %s\n", d.Name, bankName(d.Bank), d.Bit, irq)
	}
}

type jsonDoc struct {
	Chip    string       `json:"chip"`
	Ports   int          `json:"ports"`
	Pins    []jsonPin    `json:"pins,omitempty"`
	Catalog []jsonPeriph `json:"catalog,omitempty"`
}

type jsonPin struct {
	Pin    string      `json:"pin"`
	IRQ    *int        `json:"irq,omitempty"`
	Routes []jsonRoute `json:"routes,omitempty"`
}

type jsonRoute struct {
	Sel    int    `json:"sel"`
	Periph string `json:"periph"`
	Role   string `json:"role"`
	CS     *int   `json:"cs,omitempty"`
}

type jsonPeriph struct {
	Name string `json:"name"`
	Bank string `json:"bank"`
	Bit  int    `json:"bit"`
	IRQ  *int   `json:"irq,omitempty"`
}

// printJSON honours the same filters as the text paths.
func printJSON(c *family.Chip) error {
	l := c.Layout()
	doc := jsonDoc{Chip: c.Name(), Ports: l.Ports()}

	if *catalogFlag {
		for _, d := range c.Catalog() {
			if *periphFlag != "" && d.Name != *periphFlag {
				continue
			}
			doc.Catalog = append(doc.Catalog, jsonPeriph{
				Name: d.Name, Bank: bankName(d.Bank), Bit: int(d.Bit), IRQ: irqPtr(d.IRQ),
			})
		}
	} else {
		var only pin.ID
		haveOnly := false
		if *pinFlag != "" {
			id, err := parsePin(l, *pinFlag)
			if err != nil {
				return err
			}
			only, haveOnly = id, true
		}
		l.ForEach(func(id pin.ID) {
			if haveOnly && id != only {
				return
			}
			jp := jsonPin{Pin: id.String()}
			if line, ok := l.PinInterrupt(id); ok {
				jp.IRQ = &line
			}
			for _, e := range c.Caps().RowsFor(id) {
				if *periphFlag != "" && e.Periph != *periphFlag {
					continue
				}
				r := jsonRoute{Sel: int(e.Sel), Periph: e.Periph, Role: e.Role.String()}
				if e.CS >= 0 {
					cs := int(e.CS)
					r.CS = &cs
				}
				jp.Routes = append(jp.Routes, r)
			}
			if *periphFlag != "" && len(jp.Routes) == 0 {
				return
			}
			doc.Pins = append(doc.Pins, jp)
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func irqPtr(irq int) *int {
	if irq == family.NoIRQ {
		return nil
	}
	return &irq
}

// route renders one table row as its destination: tim rows name the
// timer alone, hwcs rows carry the chip-select id.
func route(e family.Entry) string {
	switch e.Role {
	case family.RoleHwCs:
		return fmt.Sprintf("%s/cs%d", e.Periph, e.CS)
	case family.RoleTim:
		return e.Periph
	}
	return e.Periph + "/" + e.Role.String()
}

func bankName(b family.CtrlBank) string {
	if b == family.CtrlTim {
		return "tim"
	}
	return "periph"
}
