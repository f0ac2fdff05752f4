package admin

import (
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var (
	loginPageTmpl = template.Must(template.New("admin-login").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Costa Verde &middot; Acceso</title>
</head>
<body>
	<main>
		<h1>Costa Verde</h1>
		<form method="post" action="/api/admin/login">
			<label for="identifier">Email</label>
			<input type="email" id="identifier" name="identifier" autocomplete="username" required>
			<label for="secret">Contrase&ntilde;a</label>
			<input type="password" id="secret" name="secret" autocomplete="current-password" required>
			<button type="submit">Ingresar</button>
		</form>
	</main>
</body>
</html>
`))

	adminPageTmpl = template.Must(template.New("admin-page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Costa Verde &middot; Panel</title>
</head>
<body>
	<main>
		<h1>Panel de administraci&oacute;n</h1>
		<nav>
			<a href="/api/admin/banners">Banners</a>
			<a href="/api/admin/videos">Videos</a>
			<a href="/api/admin/gallery">Galer&iacute;a</a>
			<a href="/api/admin/contacts/page/1/size/20">Contactos</a>
			<a href="/api/admin/settings">Ajustes</a>
		</nav>
		<form method="post" action="/api/admin/logout">
			<button type="submit">Salir</button>
		</form>
	</main>
</body>
</html>
`))
)

func (handler *Handler) handleLoginPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := loginPageTmpl.Execute(w, nil); err != nil {
		log.Errorf("render login page: %s", err)
	}
}

func (handler *Handler) handleAdminPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := adminPageTmpl.Execute(w, nil); err != nil {
		log.Errorf("render admin page: %s", err)
	}
}
