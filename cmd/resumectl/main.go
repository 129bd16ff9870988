// Command resumectl edits and exports a resume through the resume API.
//
//	resumectl -user <id> show
//	resumectl -user <id> template classic
//	resumectl -user <id> skills "Go, SQL"
//	resumectl -user <id> personal name="Jane Doe" email=jane@example.com
//	resumectl -user <id> add-experience title=Engineer company=Acme startDate=2020-01
//	resumectl -user <id> update-experience <entry-id> endDate=2023-06
//	resumectl -user <id> remove-experience <entry-id>
//	resumectl -user <id> add-education degree=BSc school=Uni
//	resumectl -user <id> update-education <entry-id> gpa=3.8
//	resumectl -user <id> remove-education <entry-id>
//	resumectl -user <id> render -out resume.html [-template modern]
//	resumectl -user <id> export -out resume.pdf [-template classic]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"resume-builder/internal/draft"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/client"
)

func main() {
	api := flag.String("api", "", "resume API base URL (default $RESUME_API_URL or http://localhost:3000)")
	user := flag.String("user", "", "owner user ID")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: resumectl [-api url] -user id <command> [args]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *user == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := client.NewClient()
	if *api != "" {
		c = client.NewClientWithBaseURL(*api)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, c, *user, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "resumectl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, userID, cmd string, args []string) error {
	d := draft.New(userID)
	if err := d.Load(ctx, c); err != nil {
		return err
	}

	switch cmd {
	case "show":
		return printJSON(d.Content())
	case "render":
		return renderLocal(d, args)
	case "export":
		return export(ctx, c, userID, args)
	}

	if err := edit(d, cmd, args); err != nil {
		return err
	}
	saved, err := d.Save(ctx, c)
	if err != nil {
		return err
	}
	return printJSON(saved)
}

// edit applies one mutating command to the draft.
func edit(d *draft.Draft, cmd string, args []string) error {
	switch cmd {
	case "template":
		if len(args) != 1 {
			return errors.New("template takes one argument")
		}
		return d.SetTemplate(model.Template(args[0]))
	case "skills":
		d.SetSkills(strings.Join(args, " "))
		return nil
	case "personal":
		return applyFields(args, d.SetPersonalField)
	case "add-experience":
		id := d.AddExperience()
		return applyFields(args, func(f, v string) error { return d.UpdateExperience(id, f, v) })
	case "add-education":
		id := d.AddEducation()
		return applyFields(args, func(f, v string) error { return d.UpdateEducation(id, f, v) })
	case "update-experience", "update-education", "remove-experience", "remove-education":
		if len(args) == 0 {
			return fmt.Errorf("%s needs an entry id", cmd)
		}
		id, rest := args[0], args[1:]
		switch cmd {
		case "update-experience":
			return applyFields(rest, func(f, v string) error { return d.UpdateExperience(id, f, v) })
		case "update-education":
			return applyFields(rest, func(f, v string) error { return d.UpdateEducation(id, f, v) })
		case "remove-experience":
			return d.RemoveExperience(id)
		default:
			return d.RemoveEducation(id)
		}
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// applyFields applies field=value arguments in order.
func applyFields(args []string, set func(field, value string) error) error {
	for _, a := range args {
		field, value, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("expected field=value, got %q", a)
		}
		if err := set(field, value); err != nil {
			return err
		}
	}
	return nil
}

func documentFlags(name string, args []string, defaultOut string) (out string, variant model.Template, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o := fs.String("out", defaultOut, "output file")
	t := fs.String("template", "", "template override (modern|classic)")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *t != "" {
		if variant, err = model.ParseTemplate(*t); err != nil {
			return "", "", err
		}
	}
	return *o, variant, nil
}

// renderLocal renders the loaded draft without going through the server.
func renderLocal(d *draft.Draft, args []string) error {
	out, variant, err := documentFlags("render", args, "resume.html")
	if err != nil {
		return err
	}
	content := d.Content()
	if variant == "" {
		variant = content.Template
	}
	r, err := render.New(render.DefaultLabels())
	if err != nil {
		return err
	}
	html, err := r.Render(variant, content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func export(ctx context.Context, c *client.Client, userID string, args []string) error {
	out, variant, err := documentFlags("export", args, "resume.pdf")
	if err != nil {
		return err
	}
	pdf, err := c.Export(ctx, userID, variant)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
