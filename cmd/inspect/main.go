//go:build darwin && cgo

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/keychain-bridge/cf"
	"github.com/wippyai/keychain-bridge/fourcc"
	"github.com/wippyai/keychain-bridge/sec"
)

func main() {
	var (
		class       = flag.String("class", "genp", "Item class: genp (generic password) or inet (internet password)")
		service     = flag.String("service", "", "Filter by service attribute")
		account     = flag.String("account", "", "Filter by account attribute")
		limit       = flag.Int("limit", 0, "Maximum items to match (0 = all)")
		queryFile   = flag.String("query", "", "YAML query spec file (overrides the filter flags)")
		createPath  = flag.String("create-keychain", "", "Create a keychain file at the given path and exit")
		verbose     = flag.Bool("v", false, "Debug-trace foreign calls")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logger.Sync()
		sec.SetLogger(logger)
	}

	if *createPath != "" {
		if err := createKeychain(*createPath); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	spec := QuerySpec{Class: *class, Service: *service, Account: *account, Limit: *limit}
	if *queryFile != "" {
		loaded, err := LoadQuerySpec(*queryFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		spec = *loaded
	}

	if *interactive {
		if err := runInteractive(spec); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	if err := dumpItems(os.Stdout, spec); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func createKeychain(path string) error {
	fmt.Fprintf(os.Stderr, "Password for %s (empty to use the system dialog): ", path)
	entered, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	password, promptUser := keychainCreateArgs(entered)
	kc, status := sec.KeychainCreate(path, password, promptUser, 0)
	if err := status.Err(); err != nil {
		return err
	}
	cf.Release(cf.Ref(kc))
	fmt.Println("created", path)
	return nil
}

// attrLine is one rendered attribute record: the four-character tag plus
// its payload, with absent data distinguished from an empty payload.
type attrLine struct {
	tag     string
	value   string
	present bool
}

// itemDetail is a fully copied-out snapshot of one matched item. The
// snapshot exists so nothing downstream (printing, the TUI) touches
// framework memory after the content's release call.
type itemDetail struct {
	class string
	title string
	attrs []attrLine
	data  string
}

func collectItems(spec QuerySpec) ([]itemDetail, error) {
	query, err := spec.Build()
	if err != nil {
		return nil, err
	}
	defer cf.Release(query)

	result, status := sec.ItemCopyMatching(query)
	if status == sec.ErrItemNotFound {
		return nil, nil
	}
	if err := status.Err(); err != nil {
		return nil, err
	}
	defer cf.Release(result)

	tags := classTags(spec.Class)
	var details []itemDetail
	collect := func(item sec.ItemRef) {
		detail, status := snapshotItem(item, tags)
		if status != sec.Success {
			details = append(details, itemDetail{
				class: "????",
				title: "unreadable item: " + status.Error(),
			})
			return
		}
		details = append(details, detail)
	}

	// With a match limit of one the framework returns a bare item
	// reference rather than an array.
	if cf.TypeOf(result) == cf.ArrayTypeID() {
		for i := 0; i < cf.ArrayLen(result); i++ {
			collect(sec.ItemRef(cf.ArrayGet(result, i)))
		}
	} else {
		collect(sec.ItemRef(result))
	}
	return details, nil
}

// snapshotItem copies an item's class, the requested attributes, and a data
// summary into Go memory and releases the foreign allocation before
// returning.
func snapshotItem(item sec.ItemRef, tags []fourcc.Code) (itemDetail, sec.Status) {
	content, status := sec.ItemCopyContent(item, tags...)
	if status != sec.Success {
		return itemDetail{}, status
	}
	defer content.Release()

	detail := itemDetail{class: content.Class.String()}
	for it := content.Attrs.Iter(); ; {
		rec, ok := it.Next()
		if !ok {
			break
		}
		line := attrLine{tag: rec.Tag().String()}
		if data, present := rec.Data(); present {
			line.present = true
			line.value = renderValue(data)
			switch rec.Tag().String() {
			case "svce", "srvr", "labl":
				if detail.title == "" {
					detail.title = string(data)
				}
			case "acct":
				if detail.title != "" {
					detail.title += " / "
				}
				detail.title += string(data)
			}
		}
		detail.attrs = append(detail.attrs, line)
	}
	if data, ok := content.Data(); ok {
		detail.data = fmt.Sprintf("%d bytes", len(data))
	}
	if detail.title == "" {
		detail.title = "(unlabeled " + detail.class + " item)"
	}
	return detail, status
}

func dumpItems(w io.Writer, spec QuerySpec) error {
	details, err := collectItems(spec)
	if err != nil {
		return err
	}
	if len(details) == 0 {
		fmt.Fprintln(w, "no items matched")
		return nil
	}

	for _, d := range details {
		fmt.Fprintf(w, "%s  %s\n", d.class, d.title)
		for _, a := range d.attrs {
			if !a.present {
				fmt.Fprintf(w, "  %s  (no data)\n", a.tag)
				continue
			}
			fmt.Fprintf(w, "  %s  %s\n", a.tag, a.value)
		}
		if d.data != "" {
			fmt.Fprintf(w, "  data  %s\n", d.data)
		}
	}
	return nil
}

func renderValue(b []byte) string {
	if len(b) == 0 {
		return `""`
	}
	printable := true
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			printable = false
			break
		}
	}
	if printable {
		return strconv.Quote(string(b))
	}
	const max = 24
	if len(b) > max {
		return fmt.Sprintf("%x... (%d bytes)", b[:max], len(b))
	}
	return fmt.Sprintf("%x", b)
}
