package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/djanbee/internal/config"
	"github.com/muurk/djanbee/internal/database"
	"github.com/muurk/djanbee/internal/project"
	"github.com/muurk/djanbee/internal/system"
	"github.com/muurk/djanbee/internal/ui"
	"github.com/muurk/djanbee/internal/widgets"
)

// Command flags
var (
	verbose      bool
	withDatabase bool
	withSettings bool
	searchDepth  int
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show captured command output")

	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configureCmd)
}

// launchCmd opens a Django project and records it as recently used
var launchCmd = &cobra.Command{
	Use:   "launch [path]",
	Short: "Find and open a Django project",
	Long: `Find and open a Django project.

Looks for a project in the given path (or the current directory),
falling back to recently opened projects and a shallow search of the
directory tree. When several projects are found, an interactive
selector lets you pick one.`,
	Example: `  # Open the project in the current directory
  djanbee launch

  # Open a specific project
  djanbee launch /srv/blog

  # Search deeper for projects
  djanbee launch --depth 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().IntVar(&searchDepth, "depth", 0, "Directory depth to search for projects (0 = configured default)")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	console := ui.NewConsole()

	proj, ok, err := resolveProject(console, args)
	if err != nil {
		return err
	}
	if !ok {
		console.Error("no project selected")
		return nil
	}

	rememberProject(console, proj)

	console.Success(fmt.Sprintf("Opened project %q\n%s", proj.Name, proj.Path))

	venvPath, hasVenv := project.FindVenv(proj.Path)
	if hasVenv {
		console.StepSuccess("Virtual environment", venvPath)
	} else {
		console.StepFailure("Virtual environment", "not found (run 'djanbee setup')")
	}

	return nil
}

// setupCmd prepares a project's virtual environment
var setupCmd = &cobra.Command{
	Use:   "setup [path]",
	Short: "Prepare a project's virtual environment",
	Long: `Prepare a Django project for deployment.

Detects or creates a virtual environment and installs the project's
requirements into it.`,
	Example: `  # Set up the project in the current directory
  djanbee setup

  # Set up a specific project
  djanbee setup /srv/blog

  # Show pip output
  djanbee setup --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	console := ui.NewConsole()
	keys := widgets.NewTerminalKeys()

	proj, ok, err := resolveProject(console, args)
	if err != nil {
		return err
	}
	if !ok {
		console.Error("no project selected")
		return nil
	}

	venvPath, hasVenv := project.FindVenv(proj.Path)
	if hasVenv {
		keep, ok, err := widgets.NewQuestionSelector(
			fmt.Sprintf("Found virtual environment at %s. Use it?", venvPath),
			console, keys,
		).WithAnswers("Use it", "Create new").Select()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !keep {
			hasVenv = false
		}
	}
	if !hasVenv {
		venvPath = filepath.Join(proj.Path, ".venv")
	}

	requirements, hasRequirements := project.FindRequirements(proj.Path)

	flow := ui.NewFlow(ui.FlowConfig{
		Title:   "Project Setup",
		Command: "djanbee setup",
		Params: map[string]string{
			"Project": proj.Name,
			"Path":    proj.Path,
		},
		TotalSteps: 2,
		StepNames: []string{
			"Preparing virtual environment",
			"Installing requirements",
		},
		Troubleshooting: []string{
			"Check that python3 with the venv module is installed",
			"Verify requirements.txt pins installable versions",
			"Run with --verbose to see full pip output",
		},
		Verbose: verbose,
	})

	python := system.NewPython(system.ExecRunner{})
	ctx := cmd.Context()

	return flow.Run(ctx, func(onStep ui.StepCallback) error {
		if hasVenv {
			onStep(1, "", ui.StepComplete, "already present")
		} else {
			onStep(1, "", ui.StepRunning, "")
			if err := python.CreateVenv(ctx, venvPath); err != nil {
				onStep(1, "", ui.StepFailed, "")
				return err
			}
			onStep(1, "", ui.StepComplete, venvPath)
		}

		if !hasRequirements {
			onStep(2, "", ui.StepSkipped, "no requirements.txt")
			return nil
		}

		onStep(2, "", ui.StepRunning, "")
		output, err := python.InstallRequirements(ctx, project.PipPath(venvPath), requirements)
		flow.SetCapturedOutput("pip output", output)
		if err != nil {
			onStep(2, "", ui.StepFailed, "")
			return err
		}
		onStep(2, "", ui.StepComplete, filepath.Base(requirements))
		return nil
	})
}

// configureCmd configures settings and databases for deployment
var configureCmd = &cobra.Command{
	Use:   "configure [path]",
	Short: "Configure settings and database for deployment",
	Long: `Configure a Django project for deployment.

Walks through the settings file (secret key rotation, allowed hosts,
debug mode) and PostgreSQL database provisioning (role, database,
grants). With no flags, an interactive checklist picks the areas to
configure.`,
	Example: `  # Pick configuration areas interactively
  djanbee configure

  # Configure only the database
  djanbee configure -d

  # Configure only the settings file
  djanbee configure -s /srv/blog`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().BoolVarP(&withDatabase, "database", "d", false, "Configure the PostgreSQL database")
	configureCmd.Flags().BoolVarP(&withSettings, "settings", "s", false, "Configure the settings file")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	console := ui.NewConsole()
	keys := widgets.NewTerminalKeys()

	proj, ok, err := resolveProject(console, args)
	if err != nil {
		return err
	}
	if !ok {
		console.Error("no project selected")
		return nil
	}

	doSettings, doDatabase := withSettings, withDatabase
	if !doSettings && !doDatabase {
		areas, ok, err := widgets.NewCheckboxSelector(
			"What should be configured?",
			[]string{"Settings file", "PostgreSQL database"},
			console, keys,
		).Preselect(0, 1).Select()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		for _, area := range areas {
			switch area {
			case "Settings file":
				doSettings = true
			case "PostgreSQL database":
				doDatabase = true
			}
		}
	}

	if doSettings {
		if err := configureSettings(cmd, console, keys, proj); err != nil {
			return err
		}
	}
	if doDatabase {
		if err := configureDatabase(cmd, console, keys, proj); err != nil {
			return err
		}
	}
	return nil
}

// configureSettings walks through the settings file prompts
func configureSettings(cmd *cobra.Command, console *ui.Console, keys widgets.KeyReader, proj project.Project) error {
	console.Lookup("Locating settings file")

	settingsPath, err := project.FindSettings(proj.Path)
	if err != nil {
		return fmt.Errorf("failed to locate settings: %w", err)
	}
	settings, err := project.OpenSettings(settingsPath)
	if err != nil {
		return err
	}
	console.StepSuccess("Settings file", settingsPath)

	// Secret key rotation
	rotate, ok, err := widgets.NewQuestionSelector(
		"Generate a new SECRET_KEY?", console, keys,
	).WithWarning("Rotating the key invalidates all active sessions").Select()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if rotate && ui.SecretKeyRotationConfirmation() {
		key, err := project.GenerateSecretKey()
		if err != nil {
			return err
		}
		if err := settings.SetString("SECRET_KEY", key); err != nil {
			return err
		}
		console.StepSuccess("SECRET_KEY", "rotated")
	}

	// Debug mode
	debugOff, ok, err := widgets.NewQuestionSelector(
		"Disable DEBUG for production?", console, keys,
	).Select()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if debugOff {
		if err := settings.Set("DEBUG", "False"); err != nil {
			return err
		}
		console.StepSuccess("DEBUG", "False")
	}

	// Allowed hosts: remove stale entries, then add a new one
	if hosts := settings.AllowedHosts(); len(hosts) > 0 {
		remove, ok, err := widgets.NewCheckboxSelector(
			"Remove entries from ALLOWED_HOSTS?", hosts, console, keys,
		).Select()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if len(remove) > 0 {
			if err := settings.RemoveAllowedHosts(remove); err != nil {
				return err
			}
			console.StepSuccess("ALLOWED_HOSTS", fmt.Sprintf("removed %d entries", len(remove)))
		}
	}

	console.Input("Add a host to ALLOWED_HOSTS (leave empty to skip)")
	values, ok, err := widgets.NewTextInput("Allowed host", []widgets.Field{
		{Name: "Host"},
	}, console, keys).Run()
	if err != nil {
		return err
	}
	if ok {
		if host := strings.TrimSpace(values["Host"]); host != "" {
			if err := settings.AddAllowedHost(host); err != nil {
				return err
			}
			console.StepSuccess("ALLOWED_HOSTS", "added "+host)
		}
	}

	console.Success("Settings configured\n" + settingsPath)
	return nil
}

// configureDatabase provisions the PostgreSQL role and database
func configureDatabase(cmd *cobra.Command, console *ui.Console, keys widgets.KeyReader, proj project.Project) error {
	ctx := cmd.Context()
	services := system.NewServices(system.ExecRunner{})

	if !system.CommandExists("systemctl") {
		return fmt.Errorf("systemctl not found; database provisioning requires a systemd host")
	}

	// Make sure PostgreSQL is installed and running before prompting
	// for credentials.
	if !services.PackageInstalled(ctx, "postgresql") {
		install, ok, err := widgets.NewQuestionSelector(
			"PostgreSQL is not installed. Install it now?", console, keys,
		).Select()
		if err != nil {
			return err
		}
		if !ok || !install {
			return nil
		}
		console.Progress("Installing PostgreSQL")
		if err := services.InstallPackage(ctx, "postgresql"); err != nil {
			return err
		}
		console.StepSuccess("PostgreSQL", "installed")
	}

	if !services.IsActive(ctx, "postgresql") {
		console.Progress("Starting PostgreSQL service")
		if err := services.Start(ctx, "postgresql"); err != nil {
			return err
		}
		if err := services.Enable(ctx, "postgresql"); err != nil {
			return err
		}
		console.StepSuccess("PostgreSQL", "service running")
	}

	defaultName := strings.ReplaceAll(strings.ToLower(proj.Name), "-", "_")

	console.Input("PostgreSQL connection details")
	values, ok, err := widgets.NewTextInput("Database configuration", []widgets.Field{
		{Name: "Admin user", Default: "postgres"},
		{Name: "Admin password"},
		{Name: "Host", Default: "localhost"},
		{Name: "Port", Default: "5432"},
		{Name: "Database", Default: defaultName + "_db"},
		{Name: "Role", Default: defaultName},
		{Name: "Role password"},
	}, console, keys).Run()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	port, err := strconv.Atoi(strings.TrimSpace(values["Port"]))
	if err != nil {
		return fmt.Errorf("invalid port %q", values["Port"])
	}

	admin, err := database.Connect(ctx, database.Credentials{
		Host:     values["Host"],
		Port:     port,
		User:     values["Admin user"],
		Password: values["Admin password"],
	})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer admin.Close(ctx)

	role := values["Role"]
	dbName := values["Database"]

	created, err := admin.CreateRole(ctx, role, values["Role password"])
	if err != nil {
		return err
	}
	if created {
		console.StepSuccess("Role", role+" created")
	} else {
		console.StepSuccess("Role", role+" already exists")
	}

	created, err = admin.CreateDatabase(ctx, dbName)
	if err != nil {
		return err
	}
	if created {
		console.StepSuccess("Database", dbName+" created")
	} else {
		console.StepSuccess("Database", dbName+" already exists")
	}

	if err := admin.GrantDatabase(ctx, dbName, role); err != nil {
		return err
	}
	console.StepSuccess("Grants", role+" on "+dbName)

	if verbose {
		if names, err := admin.ListDatabases(ctx); err == nil {
			console.Line(ui.RenderCommandOutput("databases on "+values["Host"], strings.Join(names, "\n")))
		}
	}

	console.Success(fmt.Sprintf("Database configured\n%s/%s on %s:%s",
		role, dbName, values["Host"], values["Port"]))
	return nil
}

// resolveProject finds the project to operate on: explicit path first,
// then the current directory, then recent projects and a shallow tree
// search with an interactive selector.
func resolveProject(console *ui.Console, args []string) (project.Project, bool, error) {
	if len(args) == 1 {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return project.Project{}, false, err
		}
		proj, ok := project.FindInDir(dir)
		if !ok {
			return project.Project{}, false, fmt.Errorf("no Django project found in %s", dir)
		}
		return proj, true, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return project.Project{}, false, err
	}
	if proj, ok := project.FindInDir(cwd); ok {
		return proj, true, nil
	}

	console.Lookup("Searching for Django projects")

	items := candidateItems(cwd)
	if len(items) == 0 {
		return project.Project{}, false, fmt.Errorf("no Django project found in %s", cwd)
	}

	selector := widgets.NewListSelector("Select a project", items, console, widgets.NewTerminalKeys())
	item, ok, err := selector.Select()
	if err != nil || !ok {
		return project.Project{}, false, err
	}

	proj, found := project.FindInDir(item.Value)
	if !found {
		// Recent entry whose directory no longer holds a project
		forgetProject(item.Value)
		return project.Project{}, false, fmt.Errorf("%s is no longer a Django project", item.Value)
	}
	return proj, true, nil
}

// candidateItems merges recent registry entries with a tree search
// under the working directory, recent entries first.
func candidateItems(cwd string) []widgets.Item {
	var items []widgets.Item
	seen := make(map[string]bool)

	depth := searchDepth
	registry, err := config.LoadRegistry()
	if err == nil {
		if depth <= 0 {
			depth = registry.SearchDepth()
		}
		for _, recent := range registry.Projects {
			if project.IsProject(recent.Path) && !seen[recent.Path] {
				seen[recent.Path] = true
				items = append(items, widgets.Item{Label: recent.Name, Value: recent.Path})
			}
		}
	} else if depth <= 0 {
		depth = 2
	}

	found, err := project.FindInTree(cwd, depth)
	if err != nil {
		return items
	}
	for _, proj := range found {
		if !seen[proj.Path] {
			seen[proj.Path] = true
			items = append(items, widgets.Item{Label: proj.Name, Value: proj.Path})
		}
	}
	return items
}

// rememberProject records the project in the recent list. Registry
// failures are reported but never block the command.
func rememberProject(console *ui.Console, proj project.Project) {
	registry, err := config.LoadRegistry()
	if err != nil {
		console.Error("could not load recent projects: " + err.Error())
		return
	}
	entry := registry.RememberProject(proj.Name, proj.Path)
	if venvPath, ok := project.FindVenv(proj.Path); ok {
		entry.Venv = venvPath
	}
	if err := registry.Save(); err != nil {
		console.Error("could not save recent projects: " + err.Error())
	}
}

func forgetProject(path string) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return
	}
	registry.ForgetProject(path)
	_ = registry.Save()
}
