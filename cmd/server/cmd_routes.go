package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/controllers"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/routes"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/router"
)

// ecommerce route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// No backing services needed just to mount the table.
		r := router.New()
		routes.Register(r, routes.Controllers{
			Auth:         controllers.NewAuthController(nil),
			User:         controllers.NewUserController(nil),
			Category:     controllers.NewCategoryController(nil),
			Product:      controllers.NewProductController(nil),
			Transaction:  controllers.NewTransactionController(nil),
			TokenService: auth.NewTokenService(""),
		})

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
