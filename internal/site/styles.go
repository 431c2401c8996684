package site

import "github.com/foliopress/folio/pkg/styling"

var postStyle = styling.StyleWithRegistry(`
.post {
	max-width: 42rem;
	margin: 0 auto;
}
.postHero {
	width: 100%;
	border-radius: 8px;
	margin-bottom: 1.5rem;
}
.postTitle {
	margin: 0 0 0.5rem;
	font-size: 2rem;
}
.postByline {
	display: flex;
	align-items: center;
	gap: 0.75rem;
	color: var(--color-muted);
	font-size: 0.875rem;
	margin-bottom: 2rem;
}
.postBody {
	font-size: 1.0625rem;
}
.postBody h2 {
	margin-top: 2.5rem;
}
.postTags {
	display: flex;
	gap: 0.75rem;
	margin: 2.5rem 0 1rem;
}
.postTags a {
	color: var(--color-muted);
	text-decoration: none;
	font-size: 0.875rem;
}
.postTags a:hover {
	color: var(--color-accent);
}
.postRelated {
	margin-top: 3rem;
	border-top: 1px solid rgba(0, 0, 0, 0.08);
	padding-top: 1.5rem;
}
`)
