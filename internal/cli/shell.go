// Package cli implements the interactive terminal session: account menu,
// first-run wardrobe setup and the main menu dispatching into item, wear-log
// and analytics flows.
package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"wardrobe/internal/database"
	"wardrobe/internal/logger"
	"wardrobe/internal/models"
)

var emailPattern = regexp.MustCompile(`^[\w\.-]+@[\w\.-]+\.\w+$`)

// Shell drives one interactive session over a prompter and output writer.
// The clock is injected so date-sensitive flows are testable.
type Shell struct {
	db  *sql.DB
	p   *Prompter
	out io.Writer
	now func() time.Time
}

func NewShell(db *sql.DB, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		db:  db,
		p:   NewPrompter(in, out),
		out: out,
		now: time.Now,
	}
}

// Run loops on the account menu until the user exits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to Smart Wardrobe Tracker!")

	for {
		fmt.Fprintln(s.out, "\n1. Register")
		fmt.Fprintln(s.out, "2. Login")
		fmt.Fprintln(s.out, "3. Exit")

		choice, err := s.p.Line("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			user, err := s.register()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if user == nil {
				continue
			}
			if err := s.setupWardrobe(user.ID); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if err := s.mainMenu(user); err != nil {
				return err
			}
		case "2":
			user, err := s.login()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if user == nil {
				continue
			}
			if err := s.mainMenu(user); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) register() (*models.User, error) {
	fmt.Fprintln(s.out, "\n=== Register New Account ===")

	name, err := s.p.NonEmpty("Enter your name: ")
	if err != nil {
		return nil, err
	}

	for {
		email, err := s.p.NonEmpty("Enter your email: ")
		if err != nil {
			return nil, err
		}
		if !emailPattern.MatchString(email) {
			fmt.Fprintln(s.out, "Invalid email format. Please try again.")
			continue
		}

		var password string
		for {
			fmt.Fprintln(s.out, "Password must be at least 8 characters long")
			password, err = s.p.Line("Enter your password: ")
			if err != nil {
				return nil, err
			}
			if len(password) >= 8 {
				break
			}
			fmt.Fprintln(s.out, "Password too short. Please try again.")
		}

		user, err := database.CreateUser(s.db, name, email, password)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				fmt.Fprintln(s.out, "Email already registered. Please use a different email.")
				continue
			}
			return nil, err
		}

		logger.Info("user registered", "user_id", user.ID, "email", user.Email)
		fmt.Fprintln(s.out, "\nRegistration successful!")
		return user, nil
	}
}

func (s *Shell) login() (*models.User, error) {
	fmt.Fprintln(s.out, "\n=== Login ===")

	for {
		email, err := s.p.Line("Enter your email: ")
		if err != nil {
			return nil, err
		}
		password, err := s.p.Line("Enter your password: ")
		if err != nil {
			return nil, err
		}

		user, err := database.AuthenticateUser(s.db, email, password)
		if err == nil {
			logger.Info("user logged in", "user_id", user.ID)
			fmt.Fprintln(s.out, "\nWelcome back!")
			return user, nil
		}
		if !errors.Is(err, database.ErrInvalidCredentials) {
			return nil, err
		}

		fmt.Fprintln(s.out, "Invalid email or password.")
		retry, err := s.p.Confirm("Would you like to try again? (y/n): ")
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, nil
		}
	}
}

// setupWardrobe seeds a fresh account with a starting set of dimension
// values. Minimums follow the first-run flow: three categories, three
// colors, two sizes, three brands; duplicates within a step are skipped.
func (s *Shell) setupWardrobe(userID int) error {
	steps := []struct {
		kind    database.DimensionKind
		minimum int
		intro   []string
	}{
		{database.Category, 3, []string{
			"\nLet's set up your wardrobe categories!",
			"What are the categories that you'd like to add in your wardrobe?",
			"(Please add at least 3 categories)",
		}},
		{database.Color, 3, []string{
			"\nWhat are the colors that you usually wear?",
			"(Please add at least 3 colors)",
		}},
		{database.Size, 2, []string{
			"\nWhat sizes do you usually wear?",
			"(Please add at least 2 sizes)",
		}},
		{database.Brand, 3, []string{
			"\nWhat brands do you usually buy?",
			"(Please add at least 3 brands)",
		}},
	}

	for _, step := range steps {
		for _, line := range step.intro {
			fmt.Fprintln(s.out, line)
		}

		seen := make(map[string]bool)
		for len(seen) < step.minimum {
			prompt := fmt.Sprintf("Enter %s %d: ", step.kind, len(seen)+1)
			name, err := s.p.NonEmpty(prompt)
			if err != nil {
				return err
			}
			if seen[name] {
				fmt.Fprintf(s.out, "%s already added.\n", name)
				continue
			}
			if _, err := database.CreateDimensionValue(s.db, userID, step.kind, name); err != nil {
				return err
			}
			seen[name] = true
		}
	}

	fmt.Fprintln(s.out, "\nWardrobe setup completed successfully!")
	return nil
}

func (s *Shell) mainMenu(user *models.User) error {
	for {
		fmt.Fprintln(s.out, "\n=== Main Menu ===")
		fmt.Fprintln(s.out, "\nClothing Menu:")
		fmt.Fprintln(s.out, "1. View All Clothing Items")
		fmt.Fprintln(s.out, "2. Add a Clothing Item")
		fmt.Fprintln(s.out, "3. Remove a Clothing Item")
		fmt.Fprintln(s.out, "4. Search/Filter Items")
		fmt.Fprintln(s.out, "\nWear Log Menu:")
		fmt.Fprintln(s.out, "5. View Wear History")
		fmt.Fprintln(s.out, "6. Add Wear Entry")
		fmt.Fprintln(s.out, "7. Remove Wear Entry")
		fmt.Fprintln(s.out, "8. Search/Filter Wear Logs")
		fmt.Fprintln(s.out, "\nAnalytics Menu:")
		fmt.Fprintln(s.out, "9. Wear Count Analytics")
		fmt.Fprintln(s.out, "10. Wardrobe Composition Analytics")
		fmt.Fprintln(s.out, "11. Investment Analytics")
		fmt.Fprintln(s.out, "12. Back to Main Menu")

		choice, err := s.p.Line("\nEnter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = s.viewItems(user.ID)
		case "2":
			actionErr = s.addItem(user.ID)
		case "3":
			actionErr = s.removeItem(user.ID)
		case "4":
			actionErr = s.searchItems(user.ID)
		case "5":
			actionErr = s.viewWearHistory(user.ID)
		case "6":
			actionErr = s.addWearEntry(user.ID)
		case "7":
			actionErr = s.removeWearEntry(user.ID)
		case "8":
			actionErr = s.searchWearLogs(user.ID)
		case "9":
			actionErr = s.wearCountAnalytics(user.ID)
		case "10":
			actionErr = s.compositionAnalytics(user.ID)
		case "11":
			actionErr = s.investmentAnalytics(user.ID)
		case "12":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if actionErr != nil {
			if errors.Is(actionErr, io.EOF) {
				return nil
			}
			logger.Error("menu action failed", "user_id", user.ID, "choice", choice, "error", actionErr)
			fmt.Fprintf(s.out, "\nAn error occurred: %v\n", actionErr)
			fmt.Fprintln(s.out, "Returning to Main Menu...")
		}
	}
}

// selectDimensionValue lists a dimension's values and asks for one. A nil
// value with nil error means the user had nothing to pick from.
func (s *Shell) selectDimensionValue(userID int, kind database.DimensionKind) (*models.DimensionValue, error) {
	values, err := database.ListDimensionValues(s.db, userID, kind)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		fmt.Fprintf(s.out, "No %ss found.\n", kind)
		return nil, nil
	}

	fmt.Fprintf(s.out, "\nSelect %s:\n", kind.Label())
	for i, value := range values {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, value.Name)
	}

	choice, err := s.p.IntInRange("Enter number: ", 1, len(values))
	if err != nil {
		return nil, err
	}
	return &values[choice-1], nil
}
