package view

import "github.com/a-h/templ"

// cytoscapeURL is the graph library the family tree is drawn with.
const cytoscapeURL = "https://unpkg.com/cytoscape@3.30.2/dist/cytoscape.min.js"

// treeScript reads the graph from data-src and hands it to cytoscape.
// Clicking a node that is in the database opens its variety page.
const treeScript = `
(function(){
  var el = document.getElementById('tree');
  fetch(el.dataset.src).then(function(r){ return r.json(); }).then(function(g){
    var elements = g.nodes.map(function(n){
      return {data:{id:n.id,label:n.label,slug:n.slug||'',color:n.color||'',ext:n.in_dataset?'':'ext'}};
    }).concat(g.edges.map(function(e,i){
      return {data:{id:'e'+i,source:e.source,target:e.target,kind:e.kind}};
    }));
    var cy = cytoscape({
      container: el,
      elements: elements,
      layout: {name:'breadthfirst', directed:true, spacingFactor:1.2},
      style: [
        {selector:'node', style:{'label':'data(label)','background-color':'#7b1e3a','font-size':10}},
        {selector:'node[ext = "ext"]', style:{'background-color':'#bbb'}},
        {selector:'edge', style:{'curve-style':'bezier','target-arrow-shape':'triangle','width':1.5}},
        {selector:'edge[kind = "mutation"]', style:{'line-style':'dashed'}}
      ]
    });
    cy.on('tap', 'node', function(evt){
      var slug = evt.target.data('slug');
      if (slug) { window.location.href = el.dataset.base + '/' + encodeURIComponent(slug); }
    });
    if (el.dataset.focus) {
      var n = cy.getElementById(el.dataset.focus);
      if (n.nonempty()) { cy.center(n); n.select(); }
    }
  }).catch(function(){ el.textContent = el.dataset.error; });
})();
`

// FamilyTree is the page hosting the family-tree graph. The graph itself is
// loaded in the browser from dataURL; focus optionally names the slug of the
// variety to centre on.
func FamilyTree(p Page, dataURL, focus string) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T("tree.title"))
		h.el("p", p.T("tree.intro"))
		h.raw(`<ul class="legend"><li>`)
		h.text("→ " + p.T("tree.legend_cross"))
		h.raw("</li><li>")
		h.text("⇢ " + p.T("tree.legend_mutation"))
		h.raw(`</li><li class="muted">`)
		h.text("● " + p.T("tree.legend_external"))
		h.raw("</li></ul>")

		h.raw(`<div id="tree"`)
		h.attr("data-src", dataURL)
		h.attr("data-base", p.Href("/varieties"))
		h.attr("data-focus", focus)
		h.attr("data-error", p.T("error.internal.message"))
		h.raw(">")
		h.text(p.T("tree.loading"))
		h.raw("</div><noscript>")
		h.text(p.T("tree.noscript"))
		h.raw("</noscript>")
		h.raw(`<script src="`, cytoscapeURL, `"></script>`)
		h.raw("<script>", treeScript, "</script>")
	})
	return Layout(p, p.T("tree.title"), body)
}
