package web

import (
	"html"
	"net/http"
	"strconv"

	"github.com/rohanthewiz/element"

	"github.com/dotX12/subnetcalc/internal/subnet"
)

const styles = `
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
h2 { font-size: 1.1em; margin-top: 1.5em; }
form { max-width: 26em; }
.field { margin-bottom: 0.6em; }
.field label { display: inline-block; width: 7em; }
.error { margin-top: 1em; padding: 0.6em; background: #fdd; border: 1px solid #c66; }
table { border-collapse: collapse; margin-top: 0.5em; }
td, th { border: 1px solid #bbb; padding: 0.3em 0.8em; text-align: left; }
td.name { font-weight: bold; }
`

func (s *Server) writePage(w http.ResponseWriter, status int, values formValues, result *subnet.Result, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(renderPage(values, result, errMsg)))
}

func renderPage(values formValues, result *subnet.Result, errMsg string) string {
	b := element.NewBuilder()
	e := b.Ele
	t := b.Text

	_ = b.WriteString("<!DOCTYPE html>\n")
	e("html").R(
		e("head").R(
			e("title").R(t("IPv4 subnet calculator")),
			e("meta", "charset", "UTF-8"),
			e("style").R(t(styles)),
		),
		e("body").R(
			e("h1").R(t("IPv4 subnet calculator")),
			renderForm(b, values),
			func() (_ any) {
				if errMsg != "" {
					e("div", "class", "error").R(t(html.EscapeString(errMsg)))
				}
				return
			}(),
			func() (_ any) {
				if result != nil {
					renderSummary(b, result.Info)
					if len(result.Subnets) > 0 {
						renderMembers(b, result.Subnets)
					}
				}
				return
			}(),
		),
	)

	return b.String()
}

func renderForm(b *element.Builder, values formValues) (x any) {
	e := b.Ele
	t := b.Text

	e("form", "method", "POST", "action", "/subnets").R(
		e("div", "class", "field").R(
			e("label").R(t("CIDR")),
			e("input", "type", "text", "name", "cidr", "placeholder", "192.168.1.0/24", "value", html.EscapeString(values.CIDR)),
		),
		e("div", "class", "field").R(
			e("label").R(t("Address")),
			e("input", "type", "text", "name", "address", "placeholder", "192.168.1.0", "value", html.EscapeString(values.Address)),
		),
		e("div", "class", "field").R(
			e("label").R(t("Mask")),
			e("input", "type", "text", "name", "mask", "placeholder", "255.255.255.0", "value", html.EscapeString(values.Mask)),
		),
		e("div", "class", "field").R(
			e("label").R(t("Subnets")),
			e("input", "type", "text", "name", "count", "value", html.EscapeString(values.Count)),
		),
		e("button", "type", "submit").R(t("Calculate")),
	)
	return
}

func renderSummary(b *element.Builder, info *subnet.Info) (x any) {
	e := b.Ele
	t := b.Text

	e("h2").R(t("Summary"))
	e("table", "class", "summary").R(
		e("tbody").R(
			summaryRow(b, "CIDR", info.CIDR),
			summaryRow(b, "Network address", info.NetworkAddress.String()),
			summaryRow(b, "Subnet mask", info.Mask.String()),
			summaryRow(b, "Wildcard mask", info.WildcardMask.String()),
			summaryRow(b, "Broadcast address", info.BroadcastAddress.String()),
			summaryRow(b, "First host", info.FirstHost.String()),
			summaryRow(b, "Last host", info.LastHost.String()),
			summaryRow(b, "Usable hosts", strconv.FormatUint(info.NumberOfHosts, 10)),
			summaryRow(b, "Subnets from classful origin", strconv.FormatUint(info.NumberOfSubnets, 10)),
		),
	)
	return
}

func summaryRow(b *element.Builder, name, value string) (x any) {
	e := b.Ele
	t := b.Text

	e("tr").R(
		e("td", "class", "name").R(t(name)),
		e("td").R(t(value)),
	)
	return
}

func renderMembers(b *element.Builder, members []subnet.Detail) (x any) {
	e := b.Ele
	t := b.Text

	e("h2").R(t("Subnets"))
	e("table", "class", "members").R(
		e("thead").R(
			e("tr").R(
				e("th").R(t("#")),
				e("th").R(t("Network")),
				e("th").R(t("Host range")),
				e("th").R(t("Broadcast")),
			),
		),
		e("tbody").R(
			func() (_ any) {
				for _, m := range members {
					e("tr").R(
						e("td").R(t(strconv.Itoa(m.Index))),
						e("td").R(t(m.NetworkAddress.String())),
						e("td").R(t(m.HostRange)),
						e("td").R(t(m.BroadcastAddress.String())),
					)
				}
				return
			}(),
		),
	)
	return
}
