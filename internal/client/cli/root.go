package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := string(a.collection)
	if sub := a.session.Subject(); sub != "" {
		s = sub + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the console loop. It reads a line, parses the first token as the
// command, and dispatches against the active collection. The loop exits on
// EOF or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Trip admin console (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "ta %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: users, trips, (l)ist, refresh, add, edit <id>, delete <id>, exit")

		case "users":
			a.collection = CollectionUsers
		case "trips":
			a.collection = CollectionTrips

		case "l", "list":
			if a.collection == CollectionUsers {
				a.listUsers(ctx)
			} else {
				a.listTrips(ctx)
			}

		case "refresh":
			if a.collection == CollectionUsers {
				_ = a.users.FetchAll(ctx)
			} else {
				_ = a.trips.FetchAll(ctx)
			}

		case "add":
			if a.collection == CollectionUsers {
				a.addUser(ctx)
			} else {
				a.addTrip(ctx)
			}

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			if a.collection == CollectionUsers {
				a.editUser(ctx, args[0])
			} else {
				a.editTrip(ctx, args[0])
			}

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			if a.collection == CollectionUsers {
				a.deleteUser(ctx, args[0])
			} else {
				a.deleteTrip(ctx, args[0])
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
